package events

import "github.com/atomicstack/tomtext-pager/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Open(path string, index, total int) {
	logging.Trace("tab.open", map[string]interface{}{"path": path, "index": index, "tabs": total})
}

func (TabTracer) OpenFailed(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tab.open-failed", payload)
}

func (TabTracer) Close(path string, remaining int) {
	logging.Trace("tab.close", map[string]interface{}{"path": path, "tabs": remaining})
}

func (TabTracer) CloseRefused(path string) {
	logging.Trace("tab.close-refused", map[string]interface{}{"path": path})
}

func (TabTracer) Cycle(from, to int) {
	logging.Trace("tab.cycle", map[string]interface{}{"from": from, "to": to})
}
