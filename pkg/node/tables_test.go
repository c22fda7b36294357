package node

import "testing"

func TestAttributeTableMatchesConstructors(t *testing.T) {
	valued := map[string]func(string) Attr{
		"Accept": Accept, "AcceptCharset": AcceptCharset, "Action": Action, "Alt": Alt,
		"AriaChecked": AriaChecked, "AriaCurrent": AriaCurrent, "AriaDescribedBy": AriaDescribedBy,
		"AriaDisabled": AriaDisabled, "AriaHidden": AriaHidden, "AriaInvalid": AriaInvalid,
		"AriaLabel": AriaLabel, "AriaLabelledBy": AriaLabelledBy, "AriaPlaceholder": AriaPlaceholder,
		"AriaReadonly": AriaReadonly, "AriaRequired": AriaRequired, "Autocapitalize": Autocapitalize,
		"Autocomplete": Autocomplete, "Capture": Capture, "Charset": Charset, "Cite": Cite,
		"Class": Class, "Cols": Cols, "ColSpan": ColSpan, "Content": Content,
		"ContentEditable": ContentEditable, "CrossOrigin": CrossOrigin, "Dir": Dir,
		"Download": Download, "Draggable": Draggable, "Enctype": Enctype, "For": For, "Form": Form,
		"FormAction": FormAction, "Height": Height, "Href": Href, "Hreflang": Hreflang,
		"HTTPEquiv": HTTPEquiv, "ID": ID, "Integrity": Integrity, "Lang": Lang, "Loading": Loading,
		"Max": Max, "MaxLength": MaxLength, "Media": Media, "Method": Method, "Min": Min,
		"MinLength": MinLength, "Name": Name, "Pattern": Pattern, "Placeholder": Placeholder,
		"Preload": Preload, "Property": Property, "Rel": Rel, "Role": Role, "Rows": Rows,
		"RowSpan": RowSpan, "Size": Size, "Sizes": Sizes, "Src": Src, "SrcSet": SrcSet,
		"Step": Step, "Style": Style, "TabIndex": TabIndex, "Target": Target, "Title": Title,
		"Type": Type, "Value": Value, "Width": Width,
	}
	flags := map[string]func() Attr{
		"Async": Async, "Autofocus": Autofocus, "Autoplay": Autoplay, "Checked": Checked,
		"Controls": Controls, "Defer": Defer, "Disabled": Disabled, "Hidden": Hidden, "Loop": Loop,
		"Multiple": Multiple, "Muted": Muted, "NoValidate": NoValidate, "ReadOnly": ReadOnly,
		"Required": Required, "Selected": Selected,
	}

	specs := AttrSpecs()
	if len(specs) != len(valued)+len(flags) {
		t.Errorf("table has %d entries, constructors %d", len(specs), len(valued)+len(flags))
	}
	for i, spec := range specs {
		if i > 0 && specs[i-1].Name >= spec.Name {
			t.Errorf("AttrSpecs not sorted at %q", spec.Name)
		}
		var a Attr
		if spec.Flag {
			fn, ok := flags[spec.Func]
			if !ok {
				t.Errorf("%s: no flag constructor %s", spec.Name, spec.Func)
				continue
			}
			a = fn()
			if a.Value != "" {
				t.Errorf("%s: flag value = %q", spec.Name, a.Value)
			}
		} else {
			fn, ok := valued[spec.Func]
			if !ok {
				t.Errorf("%s: no constructor %s", spec.Name, spec.Func)
				continue
			}
			a = fn("v")
			if a.Value != "v" {
				t.Errorf("%s: value = %q", spec.Name, a.Value)
			}
		}
		if a.Name != spec.Name {
			t.Errorf("%s() builds %q, table says %q", spec.Func, a.Name, spec.Name)
		}
		if got, ok := LookupAttr(spec.Name); !ok || got != spec {
			t.Errorf("LookupAttr(%q) = %v, %v", spec.Name, got, ok)
		}
	}

	if _, ok := LookupAttr("hx-post"); ok {
		t.Error("unknown attribute should not resolve")
	}
	if a := Attribute("hx-post", "/x"); a != (Attr{Name: "hx-post", Value: "/x"}) {
		t.Errorf("Attribute = %v", a)
	}
	if a := Data("id", "7"); a.Name != "data-id" || a.Value != "7" {
		t.Errorf("Data = %v", a)
	}
}

func TestElementTables(t *testing.T) {
	for _, tag := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"} {
		if !IsVoidElement(tag) || !IsKnownElement(tag) {
			t.Errorf("%s should be a known void element", tag)
		}
	}
	for _, tag := range []string{"div", "html", "script", "textarea"} {
		if IsVoidElement(tag) || !IsKnownElement(tag) {
			t.Errorf("%s should be a known non-void element", tag)
		}
	}
	if IsKnownElement("my-widget") {
		t.Error("custom elements are not known")
	}
}
