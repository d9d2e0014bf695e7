package notion

// Property names of the calendar database. The schema is Spanish like the
// calendar itself.
const (
	propTitle        = "Name"
	propLocation     = "Lugar"
	propDate         = "Fecha"
	propType         = "Tipo"
	propScouters     = "Scouters asistentes"
	propParticipants = "Educandos asistentes"
)

// page is one raw record as returned by the database query endpoint
type page struct {
	URL        string                  `json:"url"`
	Properties map[string]pageProperty `json:"properties"`
}

// pageProperty holds the per-type value fields of a Notion property. Only
// the field matching the property's type is populated.
type pageProperty struct {
	Title       []richText     `json:"title,omitempty"`
	RichText    []richText     `json:"rich_text,omitempty"`
	Date        *dateValue     `json:"date,omitempty"`
	Select      *selectOption  `json:"select,omitempty"`
	MultiSelect []selectOption `json:"multi_select,omitempty"`
	Relation    []relationRef  `json:"relation,omitempty"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type dateValue struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type selectOption struct {
	Name string `json:"name"`
}

type relationRef struct {
	ID string `json:"id"`
}
