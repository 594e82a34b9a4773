package events

import "github.com/atomicstack/cascade-menu/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key string, handled bool) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "handled": handled})
}

func (UITracer) Pointer(action string, x, y int) {
	logging.Trace("ui.pointer", map[string]interface{}{"action": action, "x": x, "y": y})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Reload(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("ui.reload", payload)
}

func (UITracer) OpenPath(path string, indices []int) {
	logging.Trace("ui.open-path", map[string]interface{}{"path": path, "indices": indices})
}

func (UITracer) Tick(fired int) {
	logging.Trace("ui.tick", map[string]interface{}{"fired": fired})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
