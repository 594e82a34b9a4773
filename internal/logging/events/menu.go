package events

import "github.com/atomicstack/cascade-menu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Mount(id, parent string) {
	logging.Trace("menu.mount", map[string]interface{}{"id": id, "parent": parent})
}

func (MenuTracer) Unmount(id string) {
	logging.Trace("menu.unmount", map[string]interface{}{"id": id})
}

func (MenuTracer) Open(id, parent, reason string) {
	logging.Trace("menu.open", map[string]interface{}{"id": id, "parent": parent, "reason": reason})
}

func (MenuTracer) Close(id, reason string) {
	logging.Trace("menu.close", map[string]interface{}{"id": id, "reason": reason})
}

func (MenuTracer) Activate(id, label string) {
	logging.Trace("menu.activate", map[string]interface{}{"id": id, "label": label})
}

func (MenuTracer) Active(id string, index int) {
	logging.Trace("menu.active", map[string]interface{}{"id": id, "index": index})
}

func (MenuTracer) Typeahead(id, query string, index int) {
	logging.Trace("menu.typeahead", map[string]interface{}{"id": id, "query": query, "index": index})
}

func (MenuTracer) HoverArm(id string) {
	logging.Trace("menu.hover.arm", map[string]interface{}{"id": id})
}

func (MenuTracer) HoverCancel(id string) {
	logging.Trace("menu.hover.cancel", map[string]interface{}{"id": id})
}

func (MenuTracer) Dismiss(id string, x, y float64) {
	logging.Trace("menu.dismiss", map[string]interface{}{"id": id, "x": x, "y": y})
}
