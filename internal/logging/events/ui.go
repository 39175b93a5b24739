package events

import "github.com/atomicstack/tomtext-pager/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Cursor(path string, row, index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"path": path, "row": row, "index": index})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) ResizeRejected(width, height int, err error) {
	payload := map[string]interface{}{"width": width, "height": height}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("ui.resize-rejected", payload)
}

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}
