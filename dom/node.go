package dom

import (
	"strings"

	"github.com/heathj/eventoptions/webidl"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when an element lookup has no match.
var ErrNotFound = errors.New("node not found")

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType    NodeType
	NodeName    webidl.DOMString
	Attributes  map[string]string
	TextContent string

	ParentNode *Node
	ChildNodes []*Node

	window *Window
	list   listenerList
}

func newNode(w *Window, nodeType NodeType, name webidl.DOMString) *Node {
	return &Node{
		NodeType:   nodeType,
		NodeName:   name,
		Attributes: map[string]string{},
		window:     w,
	}
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.Attributes["id"]
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.spec.whatwg.org/#dom-node-appendchild
func (n *Node) AppendChild(child *Node) *Node {
	if child.ParentNode != nil {
		child.ParentNode.RemoveChild(child)
	}
	child.ParentNode = n
	child.walk(func(c *Node) bool {
		c.window = n.window
		return false
	})
	n.ChildNodes = append(n.ChildNodes, child)
	return child
}

// https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.ChildNodes {
		if c == child {
			n.ChildNodes = append(n.ChildNodes[:i], n.ChildNodes[i+1:]...)
			child.ParentNode = nil
			return child
		}
	}
	return nil
}

// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.ParentNode {
		if p == n {
			return true
		}
	}
	return false
}

// GetElementByID walks the subtree rooted at n in tree order.
func (n *Node) GetElementByID(id string) (*Node, error) {
	if found := n.find(func(c *Node) bool { return c.NodeType == ElementNode && c.ID() == id }); found != nil {
		return found, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "#%s", id)
}

// GetElementsByTagName returns the descendants named name in tree order.
func (n *Node) GetElementsByTagName(name string) []*Node {
	var out []*Node
	n.walk(func(c *Node) bool {
		if c != n && c.NodeType == ElementNode && strings.EqualFold(string(c.NodeName), name) {
			out = append(out, c)
		}
		return false
	})
	return out
}

func (n *Node) find(match func(*Node) bool) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if match(c) {
			found = c
			return true
		}
		return false
	})
	return found
}

// walk visits n and its descendants until visit returns true.
func (n *Node) walk(visit func(*Node) bool) bool {
	if visit(n) {
		return true
	}
	for _, c := range n.ChildNodes {
		if c.walk(visit) {
			return true
		}
	}
	return false
}

func (n *Node) features() Features {
	if n.window == nil {
		return ModernFeatures
	}
	return n.window.Features
}

func (n *Node) AddEventListener(eventType string, listener EventListener, options Options) error {
	return n.list.add(n.features(), eventType, listener, options)
}

func (n *Node) RemoveEventListener(eventType string, listener EventListener, options Options) {
	n.list.remove(n.features(), eventType, listener, options)
}

// ListenerCount returns the number of listeners registered for eventType.
func (n *Node) ListenerCount(eventType string) int {
	return n.list.count(eventType)
}

// https://dom.spec.whatwg.org/#dom-eventtarget-dispatchevent
func (n *Node) DispatchEvent(e *BasicEvent) bool {
	if n.window != nil {
		e.timeStamp = webidl.TimeStamp(n.window.Now())
	}
	return dispatch(n, e)
}

// https://html.spec.whatwg.org/multipage/interaction.html#dom-click
func (n *Node) Click() {
	n.DispatchEvent(NewMouseEvent("click"))
}

func (n *Node) listeners() *listenerList {
	return &n.list
}

// https://dom.spec.whatwg.org/#get-the-parent
func (n *Node) parentTarget() dispatchTarget {
	if n.ParentNode != nil {
		return n.ParentNode
	}
	if n.NodeType == DocumentNode && n.window != nil {
		return n.window
	}
	return nil
}
