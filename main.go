package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", configFile, "path to the YAML config file")
	printOnly := flag.Bool("print", false, "print one market snapshot as a table and exit")
	flag.Parse()

	os.Exit(run(*configPath, *printOnly, os.Stdout, os.Stderr))
}

// run 启动程序并返回退出码
func run(configPath string, printOnly bool, stdout, stderr io.Writer) int {
	if err := loadI18nFiles(); err != nil {
		fmt.Fprintf(stderr, "Error: cannot load language files: %v\n", err)
		return 1
	}

	config, cfgErr := loadConfig(configPath)
	setLanguage(resolveLanguage(config.System.Language))

	level := parseLogLevel(config.Log.Level)
	if config.System.DebugMode {
		level = LogDebug
	}
	if err := InitLogger(config.Log, level); err != nil {
		fmt.Fprintf(stderr, getText("error.logger"), err)
	} else {
		defer globalLogger.Close()
	}

	logInfo("log.app.start", configPath, currentLanguage)
	if cfgErr != nil {
		logWarn("log.config.fallback", configPath, cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := NewCoinCapClient(config.API)

	if printOnly {
		return runPrint(ctx, source, stdout, stderr)
	}

	m := newModel(ctx, config, source)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logInfo("log.app.interrupted", err)
			return 0
		}
		logError("log.app.runFailed", err)
		fmt.Fprintf(stderr, getText("error.run"), err)
		return 1
	}
	return 0
}

// newModel 创建主模型
func newModel(ctx context.Context, config Config, source AssetSource) *Model {
	return &Model{
		ctx:     ctx,
		config:  config,
		source:  source,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  newStyles(config.Display),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(frameTickCmd(), m.startRefresh())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.viewport.Tick()
		return m, frameTickCmd()
	case assetsFetchedMsg:
		m.applyFetchResult(msg)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// resize 记录终端尺寸并更新视口高度
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	l := computeLayout(width, height)
	m.viewport.SetHeight(l.viewportH)
	logDebug("log.viewport.resize", width, height, l.viewportH)
}

// frameTickCmd 下一帧动画
func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
