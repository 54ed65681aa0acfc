package universe

import "sort"

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates []Coord //array of row, col coordinates
}

var templates = map[string]Template{}

//AddTemplate adds the seeding template to the catalog, replacing one with the same name
func AddTemplate(t Template) {
	templates[t.Name] = t
}

//LookupTemplate finds the template by name
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

//TemplateNames returns the sorted names of all known templates
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	AddTemplate(Template{"glider", "the spaceship moving one cell diagonally every 4 generations",
		[]Coord{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}})
	AddTemplate(Template{"blinker", "period 2 oscillator",
		[]Coord{{1, 2}, {2, 2}, {3, 2}}})
	AddTemplate(Template{"block", "still life",
		[]Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}}})
	AddTemplate(Template{"beacon", "period 2 oscillator made of two blocks",
		[]Coord{{1, 1}, {1, 2}, {2, 1}, {4, 3}, {4, 4}, {3, 4}}})
	AddTemplate(Template{"sample", "the test sample with 3 stable patterns",
		[]Coord{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 3}, {2, 4}, {3, 4}, {3, 5}}})
}
