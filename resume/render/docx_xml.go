package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

const (
	wmlNamespace  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	xmlDeclHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// xmlNode is a minimal element tree. Prefixed names such as "w:p" are kept in
// Name.Local so the encoder writes them verbatim.
type xmlNode struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*xmlNode
	Text     string
	IsText   bool
}

func el(name string, children ...*xmlNode) *xmlNode {
	return &xmlNode{Name: xml.Name{Local: name}, Children: children}
}

func elAttr(name string, attrs []xml.Attr, children ...*xmlNode) *xmlNode {
	return &xmlNode{Name: xml.Name{Local: name}, Attr: attrs, Children: children}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func wVal(name, value string) *xmlNode {
	return elAttr(name, []xml.Attr{attr("w:val", value)})
}

func textNode(text string) *xmlNode {
	return &xmlNode{IsText: true, Text: text}
}

// add appends non-nil children.
func (n *xmlNode) add(children ...*xmlNode) *xmlNode {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func encodeXMLPart(root *xmlNode) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclHeader)
	encoder := xml.NewEncoder(&buf)
	if err := encodeXMLNode(encoder, root); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeXMLNode(encoder *xml.Encoder, node *xmlNode) error {
	if node.IsText {
		return encoder.EncodeToken(xml.CharData([]byte(node.Text)))
	}
	start := xml.StartElement{Name: node.Name, Attr: node.Attr}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := encodeXMLNode(encoder, child); err != nil {
			return err
		}
	}
	return encoder.EncodeToken(start.End())
}

// parseXMLPart reads a part back into a tree. The decoder resolves prefixes,
// so names come back with Space set and Local unprefixed.
func parseXMLPart(content []byte) (*xmlNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	var stack []*xmlNode
	var root *xmlNode

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{Name: t.Name, Attr: t.Attr}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 || len(t) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &xmlNode{IsText: true, Text: string(t)})
		}
	}

	if root == nil {
		return nil, errors.New("xml part has no root element")
	}
	return root, nil
}

func walkXML(node *xmlNode, visit func(*xmlNode) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children {
		walkXML(child, visit)
	}
}

// isElement matches both the written form ("w:p") and the parsed form (Space=wml, Local="p").
func isElement(node *xmlNode, local string) bool {
	if node == nil || node.IsText {
		return false
	}
	if node.Name.Local == "w:"+local {
		return true
	}
	return node.Name.Local == local && (node.Name.Space == "" || node.Name.Space == wmlNamespace)
}

func childElement(node *xmlNode, local string) *xmlNode {
	if node == nil {
		return nil
	}
	for _, child := range node.Children {
		if isElement(child, local) {
			return child
		}
	}
	return nil
}

func attrValue(node *xmlNode, local string) string {
	if node == nil {
		return ""
	}
	for _, a := range node.Attr {
		if a.Name.Local == local || a.Name.Local == "w:"+local {
			return a.Value
		}
	}
	return ""
}

func collectTextElements(node *xmlNode) []*xmlNode {
	out := []*xmlNode{}
	walkXML(node, func(n *xmlNode) bool {
		if isElement(n, "t") {
			out = append(out, n)
		}
		return true
	})
	return out
}

func nodeText(node *xmlNode) string {
	if node.IsText {
		return node.Text
	}
	var builder strings.Builder
	for _, child := range node.Children {
		if child.IsText {
			builder.WriteString(child.Text)
		}
	}
	return builder.String()
}

func paragraphText(p *xmlNode) string {
	var builder strings.Builder
	for _, node := range collectTextElements(p) {
		builder.WriteString(nodeText(node))
	}
	return builder.String()
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
