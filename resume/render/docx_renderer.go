package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-builder/resume/layout"
)

const (
	DOCXFileName    = "resume.docx"
	DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	educationSpacer = "    "
	bulletNumID     = "1"
	docxCreator     = "resume-builder"
)

// DOCXOptions controls the non-content parts of the package.
type DOCXOptions struct {
	// CreatedAt stamps zip entries and docProps/core.xml. Zero means now.
	CreatedAt time.Time
}

type docxPart struct {
	name string
	root *xmlNode
}

// DOCX writes doc as a WordprocessingML package.
func DOCX(doc layout.Document, opts DOCXOptions) ([]byte, error) {
	created := opts.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	created = created.UTC().Truncate(time.Second)

	parts := []docxPart{
		{name: "[Content_Types].xml", root: contentTypesXML()},
		{name: "_rels/.rels", root: packageRelsXML()},
		{name: "word/document.xml", root: documentXML(doc)},
		{name: "word/styles.xml", root: stylesXML()},
		{name: "word/numbering.xml", root: numberingXML()},
		{name: "word/_rels/document.xml.rels", root: documentRelsXML()},
		{name: "docProps/core.xml", root: corePropsXML(doc.Header.Name, created)},
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, part := range parts {
		content, err := encodeXMLPart(part.root)
		if err != nil {
			return nil, renderError(FormatDOCX, fmt.Errorf("encode %s: %w", part.name, err))
		}
		if err := writeZipPart(writer, part.name, content, created); err != nil {
			return nil, renderError(FormatDOCX, fmt.Errorf("write %s: %w", part.name, err))
		}
	}
	if err := writer.Close(); err != nil {
		return nil, renderError(FormatDOCX, err)
	}
	return buf.Bytes(), nil
}

func documentXML(doc layout.Document) *xmlNode {
	body := el("w:body")
	body.add(
		paragraph(paragraphProps{align: "center", spacing: SpacingMap["header"]},
			run(doc.Header.Name, StyleMap["name"])),
	)
	if contact := doc.Header.ContactLine(); contact != "" {
		body.add(paragraph(paragraphProps{align: "center", spacing: SpacingMap["header"]},
			run(contact, StyleMap["contact"])))
	}

	for _, section := range doc.Sections {
		body.add(paragraph(paragraphProps{style: "Heading2", border: true, spacing: SpacingMap["sectionHeading"]},
			run(section.HeadingText(), RunStyle{})))
		for _, block := range section.Blocks {
			body.add(blockTitleParagraph(section.Mode, block))
			for _, line := range block.Lines {
				body.add(lineParagraph(line))
			}
		}
	}

	body.add(sectionProps())
	return elAttr("w:document", []xml.Attr{
		attr("xmlns:w", wmlNamespace),
		attr("xmlns:r", relNamespace),
	}, body)
}

func blockTitleParagraph(mode layout.Mode, block layout.Block) *xmlNode {
	if block.Title == "" {
		return nil
	}
	if mode == layout.ModeEducation {
		p := paragraph(paragraphProps{align: "both", spacing: SpacingMap["normal"]},
			run(block.Title, StyleMap["institution"]))
		if block.Date != "" {
			p.add(run(educationSpacer, RunStyle{}), run(block.Date, StyleMap["institution"]))
		}
		return p
	}
	return paragraph(paragraphProps{spacing: SpacingMap["normal"]}, run(block.Title, StyleMap["entryTitle"]))
}

func lineParagraph(line layout.Line) *xmlNode {
	if line.Bullet {
		return paragraph(paragraphProps{bullet: true, spacing: SpacingMap["bullet"]}, run(line.Text, RunStyle{}))
	}
	return paragraph(paragraphProps{spacing: SpacingMap["normal"]}, run(line.Text, RunStyle{}))
}

type paragraphProps struct {
	style   string
	align   string
	spacing ParagraphSpacing
	border  bool
	bullet  bool
}

// paragraph emits w:pPr children in schema order: pStyle, numPr, pBdr, spacing, jc.
func paragraph(props paragraphProps, runs ...*xmlNode) *xmlNode {
	pPr := el("w:pPr")
	if props.style != "" {
		pPr.add(wVal("w:pStyle", props.style))
	}
	if props.bullet {
		pPr.add(el("w:numPr", wVal("w:ilvl", "0"), wVal("w:numId", bulletNumID)))
	}
	if props.border {
		pPr.add(el("w:pBdr", elAttr("w:bottom", []xml.Attr{
			attr("w:val", "single"),
			attr("w:sz", "6"),
			attr("w:space", "1"),
			attr("w:color", "000000"),
		})))
	}
	if spacing := spacingNode(props.spacing); spacing != nil {
		pPr.add(spacing)
	}
	if props.align != "" {
		pPr.add(wVal("w:jc", props.align))
	}

	p := el("w:p")
	if len(pPr.Children) > 0 {
		p.add(pPr)
	}
	return p.add(runs...)
}

func spacingNode(spacing ParagraphSpacing) *xmlNode {
	var attrs []xml.Attr
	if spacing.Before > 0 {
		attrs = append(attrs, attr("w:before", itoa(spacing.Before)))
	}
	if spacing.After > 0 {
		attrs = append(attrs, attr("w:after", itoa(spacing.After)))
	}
	if spacing.Line > 0 {
		attrs = append(attrs, attr("w:line", itoa(spacing.Line)), attr("w:lineRule", "auto"))
	}
	if len(attrs) == 0 {
		return nil
	}
	return elAttr("w:spacing", attrs)
}

// run emits w:rPr children in schema order: b, color, sz, szCs.
func run(text string, style RunStyle) *xmlNode {
	rPr := el("w:rPr")
	if style.Bold {
		rPr.add(el("w:b"), el("w:bCs"))
	}
	if style.Color != "" {
		rPr.add(wVal("w:color", style.Color))
	}
	if style.Size > 0 {
		rPr.add(wVal("w:sz", itoa(style.Size)), wVal("w:szCs", itoa(style.Size)))
	}

	r := el("w:r")
	if len(rPr.Children) > 0 {
		r.add(rPr)
	}
	return r.add(elAttr("w:t", []xml.Attr{attr("xml:space", "preserve")}, textNode(text)))
}

func sectionProps() *xmlNode {
	return el("w:sectPr",
		elAttr("w:pgSz", []xml.Attr{attr("w:w", "11906"), attr("w:h", "16838")}),
		elAttr("w:pgMar", []xml.Attr{
			attr("w:top", "1134"),
			attr("w:right", "1134"),
			attr("w:bottom", "1134"),
			attr("w:left", "1134"),
			attr("w:header", "708"),
			attr("w:footer", "708"),
			attr("w:gutter", "0"),
		}),
	)
}

func stylesXML() *xmlNode {
	heading := StyleMap["sectionHeading"]
	return elAttr("w:styles", []xml.Attr{attr("xmlns:w", wmlNamespace)},
		el("w:docDefaults",
			el("w:rPrDefault", el("w:rPr",
				elAttr("w:rFonts", []xml.Attr{
					attr("w:ascii", "Calibri"),
					attr("w:hAnsi", "Calibri"),
					attr("w:cs", "Calibri"),
				}),
				wVal("w:sz", itoa(BodySize)),
				wVal("w:szCs", itoa(BodySize)),
			)),
		),
		elAttr("w:style", []xml.Attr{attr("w:type", "paragraph"), attr("w:default", "1"), attr("w:styleId", "Normal")},
			wVal("w:name", "Normal"),
			el("w:qFormat"),
		),
		elAttr("w:style", []xml.Attr{attr("w:type", "paragraph"), attr("w:styleId", "Heading2")},
			wVal("w:name", "heading 2"),
			wVal("w:basedOn", "Normal"),
			wVal("w:next", "Normal"),
			el("w:qFormat"),
			el("w:pPr", el("w:keepNext"), wVal("w:outlineLvl", "1")),
			el("w:rPr",
				el("w:b"),
				el("w:bCs"),
				wVal("w:color", heading.Color),
				wVal("w:sz", itoa(heading.Size)),
				wVal("w:szCs", itoa(heading.Size)),
			),
		),
	)
}

func numberingXML() *xmlNode {
	return elAttr("w:numbering", []xml.Attr{attr("xmlns:w", wmlNamespace)},
		elAttr("w:abstractNum", []xml.Attr{attr("w:abstractNumId", "0")},
			wVal("w:multiLevelType", "hybridMultilevel"),
			elAttr("w:lvl", []xml.Attr{attr("w:ilvl", "0")},
				wVal("w:start", "1"),
				wVal("w:numFmt", "bullet"),
				wVal("w:lvlText", "•"),
				wVal("w:lvlJc", "left"),
				el("w:pPr", elAttr("w:ind", []xml.Attr{attr("w:left", "720"), attr("w:hanging", "360")})),
			),
		),
		elAttr("w:num", []xml.Attr{attr("w:numId", bulletNumID)},
			wVal("w:abstractNumId", "0"),
		),
	)
}

func contentTypesXML() *xmlNode {
	override := func(part, contentType string) *xmlNode {
		return elAttr("Override", []xml.Attr{attr("PartName", part), attr("ContentType", contentType)})
	}
	return elAttr("Types", []xml.Attr{attr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")},
		elAttr("Default", []xml.Attr{attr("Extension", "rels"), attr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")}),
		elAttr("Default", []xml.Attr{attr("Extension", "xml"), attr("ContentType", "application/xml")}),
		override("/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"),
		override("/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"),
		override("/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"),
		override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"),
	)
}

func relationships(rels ...[3]string) *xmlNode {
	root := elAttr("Relationships", []xml.Attr{attr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")})
	for _, rel := range rels {
		root.add(elAttr("Relationship", []xml.Attr{attr("Id", rel[0]), attr("Type", rel[1]), attr("Target", rel[2])}))
	}
	return root
}

func packageRelsXML() *xmlNode {
	return relationships(
		[3]string{"rId1", relNamespace + "/officeDocument", "word/document.xml"},
		[3]string{"rId2", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties", "docProps/core.xml"},
	)
}

func documentRelsXML() *xmlNode {
	return relationships(
		[3]string{"rId1", relNamespace + "/styles", "styles.xml"},
		[3]string{"rId2", relNamespace + "/numbering", "numbering.xml"},
	)
}

func corePropsXML(name string, created time.Time) *xmlNode {
	stamp := created.Format(time.RFC3339)
	return elAttr("cp:coreProperties", []xml.Attr{
		attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		attr("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		attr("xmlns:dcterms", "http://purl.org/dc/terms/"),
		attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
	},
		el("dc:title", textNode(name+" resume")),
		el("dc:creator", textNode(docxCreator)),
		elAttr("dcterms:created", []xml.Attr{attr("xsi:type", "dcterms:W3CDTF")}, textNode(stamp)),
		elAttr("dcterms:modified", []xml.Attr{attr("xsi:type", "dcterms:W3CDTF")}, textNode(stamp)),
	)
}

func writeZipPart(writer *zip.Writer, name string, content []byte, modified time.Time) error {
	header := &zip.FileHeader{
		Name:     normalizeZipName(name),
		Method:   zip.Deflate,
		Modified: modified,
	}
	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

// DOCXParagraph is one body paragraph as read back from word/document.xml.
type DOCXParagraph struct {
	Text   string
	Style  string
	Align  string
	Bullet bool
	Bold   bool
}

// ReadDOCXParagraphs lists the body paragraphs of a package produced by DOCX.
func ReadDOCXParagraphs(data []byte) ([]DOCXParagraph, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, file := range reader.File {
		if normalizeZipName(file.Name) != "word/document.xml" {
			continue
		}
		content, err := readZipFile(file)
		if err != nil {
			return nil, err
		}
		root, err := parseXMLPart(content)
		if err != nil {
			return nil, err
		}
		return bodyParagraphs(root), nil
	}
	return nil, errors.New("word/document.xml not found")
}

func bodyParagraphs(root *xmlNode) []DOCXParagraph {
	out := []DOCXParagraph{}
	walkXML(root, func(n *xmlNode) bool {
		if !isElement(n, "p") {
			return true
		}
		pPr := childElement(n, "pPr")
		para := DOCXParagraph{
			Text:   paragraphText(n),
			Style:  attrValue(childElement(pPr, "pStyle"), "val"),
			Align:  attrValue(childElement(pPr, "jc"), "val"),
			Bullet: childElement(pPr, "numPr") != nil,
		}
		if r := childElement(n, "r"); r != nil {
			para.Bold = childElement(childElement(r, "rPr"), "b") != nil
		}
		out = append(out, para)
		return false
	})
	return out
}
