package parse

import "fmt"

type noRelation struct{}

func (e *noRelation) Error() string {
	return "no relation declared"
}

type unknownAttribute struct {
	Attribute string
}

func (e *unknownAttribute) Error() string {
	return fmt.Sprintf("unknown attribute: %s", e.Attribute)
}
