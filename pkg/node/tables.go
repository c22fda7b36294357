package node

import "sort"

// AttrSpec maps an HTML attribute name to the constructor that builds it.
type AttrSpec struct {
	Name string // HTML attribute name
	Func string // Go constructor in this package
	Flag bool   // Constructor takes no value
}

// attributeTable is the authoritative name translation table. The
// constructors in attributes.go and the HTML-to-Go converter both follow it.
var attributeTable = []AttrSpec{
	{Name: "accept", Func: "Accept"},
	{Name: "accept-charset", Func: "AcceptCharset"},
	{Name: "action", Func: "Action"},
	{Name: "alt", Func: "Alt"},
	{Name: "aria-checked", Func: "AriaChecked"},
	{Name: "aria-current", Func: "AriaCurrent"},
	{Name: "aria-describedby", Func: "AriaDescribedBy"},
	{Name: "aria-disabled", Func: "AriaDisabled"},
	{Name: "aria-hidden", Func: "AriaHidden"},
	{Name: "aria-invalid", Func: "AriaInvalid"},
	{Name: "aria-label", Func: "AriaLabel"},
	{Name: "aria-labelledby", Func: "AriaLabelledBy"},
	{Name: "aria-placeholder", Func: "AriaPlaceholder"},
	{Name: "aria-readonly", Func: "AriaReadonly"},
	{Name: "aria-required", Func: "AriaRequired"},
	{Name: "async", Func: "Async", Flag: true},
	{Name: "autocapitalize", Func: "Autocapitalize"},
	{Name: "autocomplete", Func: "Autocomplete"},
	{Name: "autofocus", Func: "Autofocus", Flag: true},
	{Name: "autoplay", Func: "Autoplay", Flag: true},
	{Name: "capture", Func: "Capture"},
	{Name: "charset", Func: "Charset"},
	{Name: "checked", Func: "Checked", Flag: true},
	{Name: "cite", Func: "Cite"},
	{Name: "class", Func: "Class"},
	{Name: "cols", Func: "Cols"},
	{Name: "colspan", Func: "ColSpan"},
	{Name: "content", Func: "Content"},
	{Name: "contenteditable", Func: "ContentEditable"},
	{Name: "controls", Func: "Controls", Flag: true},
	{Name: "crossorigin", Func: "CrossOrigin"},
	{Name: "defer", Func: "Defer", Flag: true},
	{Name: "dir", Func: "Dir"},
	{Name: "disabled", Func: "Disabled", Flag: true},
	{Name: "download", Func: "Download"},
	{Name: "draggable", Func: "Draggable"},
	{Name: "enctype", Func: "Enctype"},
	{Name: "for", Func: "For"},
	{Name: "form", Func: "Form"},
	{Name: "formaction", Func: "FormAction"},
	{Name: "height", Func: "Height"},
	{Name: "hidden", Func: "Hidden", Flag: true},
	{Name: "href", Func: "Href"},
	{Name: "hreflang", Func: "Hreflang"},
	{Name: "http-equiv", Func: "HTTPEquiv"},
	{Name: "id", Func: "ID"},
	{Name: "integrity", Func: "Integrity"},
	{Name: "lang", Func: "Lang"},
	{Name: "loading", Func: "Loading"},
	{Name: "loop", Func: "Loop", Flag: true},
	{Name: "max", Func: "Max"},
	{Name: "maxlength", Func: "MaxLength"},
	{Name: "media", Func: "Media"},
	{Name: "method", Func: "Method"},
	{Name: "min", Func: "Min"},
	{Name: "minlength", Func: "MinLength"},
	{Name: "multiple", Func: "Multiple", Flag: true},
	{Name: "muted", Func: "Muted", Flag: true},
	{Name: "name", Func: "Name"},
	{Name: "novalidate", Func: "NoValidate", Flag: true},
	{Name: "pattern", Func: "Pattern"},
	{Name: "placeholder", Func: "Placeholder"},
	{Name: "preload", Func: "Preload"},
	{Name: "property", Func: "Property"},
	{Name: "readonly", Func: "ReadOnly", Flag: true},
	{Name: "rel", Func: "Rel"},
	{Name: "required", Func: "Required", Flag: true},
	{Name: "role", Func: "Role"},
	{Name: "rows", Func: "Rows"},
	{Name: "rowspan", Func: "RowSpan"},
	{Name: "selected", Func: "Selected", Flag: true},
	{Name: "size", Func: "Size"},
	{Name: "sizes", Func: "Sizes"},
	{Name: "src", Func: "Src"},
	{Name: "srcset", Func: "SrcSet"},
	{Name: "step", Func: "Step"},
	{Name: "style", Func: "Style"},
	{Name: "tabindex", Func: "TabIndex"},
	{Name: "target", Func: "Target"},
	{Name: "title", Func: "Title"},
	{Name: "type", Func: "Type"},
	{Name: "value", Func: "Value"},
	{Name: "width", Func: "Width"},
}

var attributeIndex = func() map[string]AttrSpec {
	m := make(map[string]AttrSpec, len(attributeTable))
	for _, spec := range attributeTable {
		m[spec.Name] = spec
	}
	return m
}()

// LookupAttr returns the constructor entry for an HTML attribute name.
func LookupAttr(name string) (AttrSpec, bool) {
	spec, ok := attributeIndex[name]
	return spec, ok
}

// AttrSpecs returns a copy of the attribute table, sorted by HTML name.
func AttrSpecs() []AttrSpec {
	out := make([]AttrSpec, len(attributeTable))
	copy(out, attributeTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// knownElements lists the non-void HTML elements.
var knownElements = map[string]bool{
	"a": true, "abbr": true, "address": true, "article": true, "aside": true,
	"audio": true, "b": true, "bdi": true, "bdo": true, "blockquote": true,
	"body": true, "button": true, "canvas": true, "caption": true, "cite": true,
	"code": true, "colgroup": true, "data": true, "datalist": true, "dd": true,
	"del": true, "details": true, "dfn": true, "dialog": true, "div": true,
	"dl": true, "dt": true, "em": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hgroup": true, "html": true, "i": true, "iframe": true,
	"ins": true, "kbd": true, "label": true, "legend": true, "li": true,
	"main": true, "map": true, "mark": true, "menu": true, "meter": true,
	"nav": true, "noscript": true, "object": true, "ol": true, "optgroup": true,
	"option": true, "output": true, "p": true, "picture": true, "pre": true,
	"progress": true, "q": true, "rp": true, "rt": true, "ruby": true,
	"s": true, "samp": true, "script": true, "search": true, "section": true,
	"select": true, "slot": true, "small": true, "span": true, "strong": true,
	"style": true, "sub": true, "summary": true, "sup": true, "svg": true,
	"table": true, "tbody": true, "td": true, "template": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "time": true, "title": true,
	"tr": true, "u": true, "ul": true, "var": true, "video": true,
}

// IsVoidElement reports whether the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// IsKnownElement reports whether the tag is a standard HTML element.
func IsKnownElement(tag string) bool {
	return voidElements[tag] || knownElements[tag]
}
