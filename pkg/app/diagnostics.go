package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
)

// Report 生成当前状态的诊断文本（F9 复制到剪贴板）
func (c *Core) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "stage: %s\n", c.Flow.Stage())
	fmt.Fprintf(&b, "frame: %d (%v)\n", c.Runner.Frame(), c.Runner.Now())
	fmt.Fprintf(&b, "pending tasks: %d\n", c.Runner.Pending())

	screen := "-"
	if id, ok := c.Navigator.State().ActiveScreen(); ok {
		if sc, ok := ecs.GetComponent[*components.ScreenComponent](c.Entities, id); ok {
			screen = sc.Name
		}
	}
	control := "-"
	if id, ok := c.Navigator.Current(); ok {
		if cc, ok := ecs.GetComponent[*components.ControlComponent](c.Entities, id); ok {
			control = cc.Name
		}
	}
	fmt.Fprintf(&b, "active screen: %s\n", screen)
	fmt.Fprintf(&b, "focused control: %s\n", control)

	overlay := c.Transitions.Overlay()
	fmt.Fprintf(&b, "overlay: opacity=%.2f raised=%v token=%d\n", c.Transitions.Opacity(), overlay.Raised(), c.Transitions.Latest())

	prefs := c.Prefs.Get()
	fmt.Fprintf(&b, "prefs: fullscreen=%v audio=%v\n", prefs.Fullscreen, prefs.Audio)
	fmt.Fprintf(&b, "samples: %s\n", strings.Join(c.Audio.SampleIDs(), ","))
	fmt.Fprintf(&b, "background variant: %d\n", c.Background.Variant())

	if s := c.Pause.Session(); s != nil {
		st := s.State()
		id := "-"
		if identified, ok := s.(interface{ ID() string }); ok {
			id = identified.ID()
		}
		fmt.Fprintf(&b, "session: %s paused=%v ending=%v\n", id, st.Paused, st.Ending)
	} else {
		b.WriteString("session: none\n")
	}
	return b.String()
}

// CopyReport 把诊断文本复制到系统剪贴板
func (c *Core) CopyReport() error {
	if err := clipboard.WriteAll(c.Report()); err != nil {
		return fmt.Errorf("failed to copy diagnostics: %w", err)
	}
	return nil
}
