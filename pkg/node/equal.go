package node

// Equal reports whether a and b are structurally equal: same variants,
// names, attributes and children, compared in order. A nil node equals
// Empty, and nil and empty slices are equal.
func Equal(a, b Node) bool {
	type pair struct{ a, b Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if KindOf(p.a) != KindOf(p.b) {
			return false
		}
		switch x := p.a.(type) {
		case Tag:
			y := p.b.(Tag)
			if x.Name != y.Name || !equalAttrs(x.Attrs, y.Attrs) {
				return false
			}
		case VoidTag:
			y := p.b.(VoidTag)
			if x.Name != y.Name || !equalAttrs(x.Attrs, y.Attrs) {
				return false
			}
		case Text:
			if x.Content != p.b.(Text).Content {
				return false
			}
		}

		ka, kb := ChildrenOf(p.a), ChildrenOf(p.b)
		if len(ka) != len(kb) {
			return false
		}
		for i := range ka {
			stack = append(stack, pair{ka[i], kb[i]})
		}
	}
	return true
}

func equalAttrs(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n, Empty nodes
// included.
func Count(n Node) int {
	total := 0
	stack := []Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		stack = append(stack, ChildrenOf(top)...)
	}
	return total
}
