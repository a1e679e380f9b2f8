package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/spacejump/pkg/app"
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/scenes"
)

const tickRate = 60

// tickMsg 驱动一帧
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4A0FF")).MarginBottom(1)
	controlStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#554488"))
	focusedStyle = controlStyle.Bold(true).Foreground(lipgloss.Color("#0A061E")).Background(lipgloss.Color("#9678FF"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
	panelStyle   = lipgloss.NewStyle().Padding(1, 4)
)

// keyCodes 终端按键名 -> 物理按键名（与 ebiten.Key.String() 一致）
var keyCodes = map[string]string{
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	"enter": "Enter",
	" ":     "Space",
	"space": "Space",
	"a":     "A",
	"d":     "D",
	"w":     "W",
	"s":     "S",
}

// model 终端前端
type model struct {
	core    *app.Core
	start   time.Time
	pending []string // 下一帧自动松开的物理按键
	status  string
}

func newModel(core *app.Core) model {
	return model{
		core:  core,
		start: time.Now(),
	}
}

// Init 开始帧循环
func (m model) Init() tea.Cmd {
	return tickCmd()
}

// Update 处理按键与帧
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "f9":
			if err := m.core.CopyReport(); err != nil {
				m.status = err.Error()
			} else {
				m.status = "diagnostics copied"
			}
			return m, nil
		}
		if code, ok := keyCodes[msg.String()]; ok {
			m.core.Router.OnPhysicalKeyDown(code)
			m.pending = append(m.pending, code)
		}
		return m, nil

	case tickMsg:
		for _, code := range m.pending {
			m.core.Router.OnPhysicalKeyUp(code)
		}
		m.pending = m.pending[:0]

		m.core.Runner.Tick(time.Time(msg).Sub(m.start))
		m.core.Scenes.Update(1.0 / tickRate)
		return m, tickCmd()
	}
	return m, nil
}

// View 绘制活动屏幕或游戏状态
func (m model) View() string {
	var b strings.Builder

	if screen, ok := m.core.Navigator.State().ActiveScreen(); ok {
		b.WriteString(m.renderScreen(screen))
	} else if s, ok := m.core.Pause.Session().(*scenes.JumpSession); ok {
		x, y := s.Position()
		fmt.Fprintf(&b, "%s\n", titleStyle.Render("SPACE JUMP"))
		fmt.Fprintf(&b, "score %d  position (%.0f, %.0f)  fuel %.1f\n", s.Score(), x, y, s.Fuel())
		b.WriteString(statusStyle.Render("←/→ move  ↑ jump  enter pause"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	return panelStyle.Render(b.String())
}

// renderScreen 绘制屏幕标题与可见控件
func (m model) renderScreen(screen ecs.EntityID) string {
	em := m.core.Entities
	sc, ok := ecs.GetComponent[*components.ScreenComponent](em, screen)
	if !ok {
		return ""
	}

	rows := []string{titleStyle.Render(sc.Title)}
	for _, id := range sc.Controls {
		if !entities.IsPresent(em, id) {
			continue
		}
		cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
		style := controlStyle
		if cc.Active {
			style = focusedStyle
		}
		rows = append(rows, style.Render(cc.Label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// statusLine 流程阶段、遮罩与提示
func (m model) statusLine() string {
	t := m.core.Transitions
	line := fmt.Sprintf("stage %s | overlay %.2f | token %d | q quit, f9 copy diagnostics",
		m.core.Flow.Stage(), t.Opacity(), t.Latest())
	if m.status != "" {
		line += " | " + m.status
	}
	return line
}
