package events

import "github.com/atomicstack/tomtext-pager/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit(tabs int) {
	logging.Trace("app.quit", map[string]interface{}{"tabs": tabs})
}
