package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/kocheck/Hyle-sub001/internal/protocol"
)

// IndexPage renders the DM editing window with the full snapshot embedded.
func IndexPage(s protocol.Snapshot) templ.Component {
	return page("Hyle / DM", s)
}

// PlayerPage renders the sanitized player-facing display.
func PlayerPage(s protocol.Snapshot) templ.Component {
	return page("Hyle / Player Display", s)
}

func page(title string, s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		payload, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html><head><meta charset="utf-8"><title>%s</title></head><body>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<canvas id="map" width="%d" height="%d"></canvas>`,
			int(s.MapWidth), int(s.MapHeight)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<script id="snapshot" type="application/json">%s</script>`,
			payload); err != nil {
			return err
		}
		_, err = io.WriteString(w, `<script src="/static/app.js"></script></body></html>`)
		return err
	})
}
