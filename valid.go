package compoundfile

type Validation int

const (
	ValidationPermissive Validation = iota
	ValidationStrict
)

func (v Validation) IsStrict() bool {
	return v == ValidationStrict
}
