package notion

// Property is a single typed Notion property value. Exactly one field is set,
// which makes it marshal to the wire shape of that property kind. Use the
// constructors below rather than filling the struct directly.
type Property struct {
	Title    []richText   `json:"title,omitempty"`
	Number   *float64     `json:"number,omitempty"`
	Date     *dateValue   `json:"date,omitempty"`
	Select   *selectValue `json:"select,omitempty"`
	RichText []richText   `json:"rich_text,omitempty"`
}

// Properties maps Notion property names to their values.
type Properties map[string]Property

type richText struct {
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type dateValue struct {
	Start string `json:"start"`
}

type selectValue struct {
	Name string `json:"name"`
}

func Title(content string) Property {
	return Property{Title: []richText{{Text: textContent{Content: content}}}}
}

func Number(n float64) Property {
	return Property{Number: &n}
}

func Date(start string) Property {
	return Property{Date: &dateValue{Start: start}}
}

func Select(name string) Property {
	return Property{Select: &selectValue{Name: name}}
}

func RichText(content string) Property {
	return Property{RichText: []richText{{Text: textContent{Content: content}}}}
}
