package events

import "github.com/atomicstack/tomtext-pager/internal/logging"

type DialogTracer struct{}

var Dialog = DialogTracer{}

func (DialogTracer) Open(action, prompt string) {
	logging.Trace("dialog.open", map[string]interface{}{"action": action, "prompt": prompt})
}

func (DialogTracer) Submit(action, value string) {
	logging.Trace("dialog.submit", map[string]interface{}{"action": action, "value": value})
}

func (DialogTracer) Cancel(action string) {
	logging.Trace("dialog.cancel", map[string]interface{}{"action": action})
}
