package node

// Attribute creates an attribute with any name. It is the fallback for
// names without a dedicated constructor.
func Attribute(name, value string) Attr { return Attr{Name: name, Value: value} }

// flag creates a boolean attribute. HTML treats the empty value as present.
func flag(name string) Attr { return Attr{Name: name} }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(value string) Attr { return Attribute("id", value) }

// Class sets the class attribute.
func Class(value string) Attr { return Attribute("class", value) }

// Style sets the style attribute.
func Style(value string) Attr { return Attribute("style", value) }

// Title sets the title attribute.
func Title(value string) Attr { return Attribute("title", value) }

// Lang sets the lang attribute.
func Lang(value string) Attr { return Attribute("lang", value) }

// Dir sets the dir attribute.
func Dir(value string) Attr { return Attribute("dir", value) }

// Role sets the role attribute.
func Role(value string) Attr { return Attribute("role", value) }

// TabIndex sets the tabindex attribute.
func TabIndex(value string) Attr { return Attribute("tabindex", value) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return flag("hidden") }

// ContentEditable sets the contenteditable attribute.
func ContentEditable(value string) Attr { return Attribute("contenteditable", value) }

// Draggable sets the draggable attribute.
func Draggable(value string) Attr { return Attribute("draggable", value) }

// Autocapitalize sets the autocapitalize attribute.
func Autocapitalize(value string) Attr { return Attribute("autocapitalize", value) }

// Accessibility attributes

func AriaChecked(value string) Attr     { return Attribute("aria-checked", value) }
func AriaCurrent(value string) Attr     { return Attribute("aria-current", value) }
func AriaDescribedBy(value string) Attr { return Attribute("aria-describedby", value) }
func AriaDisabled(value string) Attr    { return Attribute("aria-disabled", value) }
func AriaHidden(value string) Attr      { return Attribute("aria-hidden", value) }
func AriaInvalid(value string) Attr     { return Attribute("aria-invalid", value) }
func AriaLabel(value string) Attr       { return Attribute("aria-label", value) }
func AriaLabelledBy(value string) Attr  { return Attribute("aria-labelledby", value) }
func AriaPlaceholder(value string) Attr { return Attribute("aria-placeholder", value) }
func AriaReadonly(value string) Attr    { return Attribute("aria-readonly", value) }
func AriaRequired(value string) Attr    { return Attribute("aria-required", value) }

// Link attributes

// Href sets the href attribute.
func Href(value string) Attr { return Attribute("href", value) }

// Hreflang sets the hreflang attribute.
func Hreflang(value string) Attr { return Attribute("hreflang", value) }

// Target sets the target attribute.
func Target(value string) Attr { return Attribute("target", value) }

// Rel sets the rel attribute.
func Rel(value string) Attr { return Attribute("rel", value) }

// Download sets the download attribute.
func Download(value string) Attr { return Attribute("download", value) }

// Cite sets the cite attribute.
func Cite(value string) Attr { return Attribute("cite", value) }

// Metadata attributes

// Charset sets the charset attribute.
func Charset(value string) Attr { return Attribute("charset", value) }

// Content sets the content attribute (for meta).
func Content(value string) Attr { return Attribute("content", value) }

// HTTPEquiv sets the http-equiv attribute.
func HTTPEquiv(value string) Attr { return Attribute("http-equiv", value) }

// Property sets the property attribute (Open Graph meta tags).
func Property(value string) Attr { return Attribute("property", value) }

// Media sets the media attribute.
func Media(value string) Attr { return Attribute("media", value) }

// Integrity sets the integrity attribute.
func Integrity(value string) Attr { return Attribute("integrity", value) }

// CrossOrigin sets the crossorigin attribute.
func CrossOrigin(value string) Attr { return Attribute("crossorigin", value) }

// Async sets the async attribute.
func Async() Attr { return flag("async") }

// Defer sets the defer attribute.
func Defer() Attr { return flag("defer") }

// Form attributes

func Accept(value string) Attr        { return Attribute("accept", value) }
func AcceptCharset(value string) Attr { return Attribute("accept-charset", value) }
func Action(value string) Attr        { return Attribute("action", value) }
func Autocomplete(value string) Attr  { return Attribute("autocomplete", value) }
func Capture(value string) Attr       { return Attribute("capture", value) }
func Enctype(value string) Attr       { return Attribute("enctype", value) }
func For(value string) Attr           { return Attribute("for", value) }
func Form(value string) Attr          { return Attribute("form", value) }
func FormAction(value string) Attr    { return Attribute("formaction", value) }
func Max(value string) Attr           { return Attribute("max", value) }
func MaxLength(value string) Attr     { return Attribute("maxlength", value) }
func Method(value string) Attr        { return Attribute("method", value) }
func Min(value string) Attr           { return Attribute("min", value) }
func MinLength(value string) Attr     { return Attribute("minlength", value) }
func Name(value string) Attr          { return Attribute("name", value) }
func Pattern(value string) Attr       { return Attribute("pattern", value) }
func Placeholder(value string) Attr   { return Attribute("placeholder", value) }
func Size(value string) Attr          { return Attribute("size", value) }
func Step(value string) Attr          { return Attribute("step", value) }
func Type(value string) Attr          { return Attribute("type", value) }
func Value(value string) Attr         { return Attribute("value", value) }

// Form state attributes

func Autofocus() Attr  { return flag("autofocus") }
func Checked() Attr    { return flag("checked") }
func Disabled() Attr   { return flag("disabled") }
func Multiple() Attr   { return flag("multiple") }
func NoValidate() Attr { return flag("novalidate") }
func ReadOnly() Attr   { return flag("readonly") }
func Required() Attr   { return flag("required") }
func Selected() Attr   { return flag("selected") }

// Table attributes

func Cols(value string) Attr    { return Attribute("cols", value) }
func ColSpan(value string) Attr { return Attribute("colspan", value) }
func Rows(value string) Attr    { return Attribute("rows", value) }
func RowSpan(value string) Attr { return Attribute("rowspan", value) }

// Media attributes

// Src sets the src attribute.
func Src(value string) Attr { return Attribute("src", value) }

// SrcSet sets the srcset attribute.
func SrcSet(value string) Attr { return Attribute("srcset", value) }

// Sizes sets the sizes attribute.
func Sizes(value string) Attr { return Attribute("sizes", value) }

// Alt sets the alt attribute.
func Alt(value string) Attr { return Attribute("alt", value) }

// Width sets the width attribute.
func Width(value string) Attr { return Attribute("width", value) }

// Height sets the height attribute.
func Height(value string) Attr { return Attribute("height", value) }

// Loading sets the loading attribute.
func Loading(value string) Attr { return Attribute("loading", value) }

// Preload sets the preload attribute.
func Preload(value string) Attr { return Attribute("preload", value) }

// Autoplay sets the autoplay attribute.
func Autoplay() Attr { return flag("autoplay") }

// Controls sets the controls attribute.
func Controls() Attr { return flag("controls") }

// Loop sets the loop attribute.
func Loop() Attr { return flag("loop") }

// Muted sets the muted attribute.
func Muted() Attr { return flag("muted") }
