package catalog

import "github.com/atomicstack/cascade-menu/internal/menu"

// Selection describes an activated leaf.
type Selection struct {
	Path []string
	Node Node
}

// Label returns the leaf label.
func (s Selection) Label() string {
	if len(s.Path) == 0 {
		return ""
	}
	return s.Path[len(s.Path)-1]
}

// Build declares the definition on a freshly created root: the trigger, the
// root popover and every nested sub menu. onSelect runs when a leaf is
// activated. A disabled node with children is shown as a disabled item.
func Build(root *menu.Menu, def Definition, onSelect func(Selection)) {
	root.Trigger(def.TriggerLabel())
	root.Popover(declare(nil, def.Items, onSelect))
}

func declare(path []string, items []Node, onSelect func(Selection)) func(*menu.Popover) {
	return func(p *menu.Popover) {
		for _, node := range items {
			nodePath := append(append([]string(nil), path...), node.Label)
			if node.IsSub() && !node.Disabled {
				p.Sub(func(sub *menu.Menu) {
					sub.SubTrigger(node.Label)
					sub.Popover(declare(nodePath, node.Items, onSelect))
				})
				continue
			}
			var opts []menu.ItemOption
			if node.Disabled {
				opts = append(opts, menu.Disabled())
			}
			if onSelect != nil {
				selection := Selection{Path: nodePath, Node: node}
				opts = append(opts, menu.OnSelect(func() { onSelect(selection) }))
			}
			p.Item(node.Label, opts...)
		}
	}
}
