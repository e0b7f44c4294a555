package extract

const (
	keyRegexp = "([_a-zA-Z0-9@]+)"
	tagName   = "mapstructure"
	textKey   = "#text"
)
