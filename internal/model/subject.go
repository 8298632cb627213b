package model

// Subject is the closed set of areas a work session can be tagged with.
type Subject string

const (
	SubjectPE        Subject = "PE"
	SubjectEnglish   Subject = "English"
	SubjectChemistry Subject = "Chemistry"
	SubjectMaths     Subject = "Maths"
	SubjectPhysics   Subject = "Physics"
)

// Subjects lists every valid subject in display order.
func Subjects() []Subject {
	return []Subject{SubjectPE, SubjectEnglish, SubjectChemistry, SubjectMaths, SubjectPhysics}
}

// Valid reports whether s is one of the known subjects. Free-text values
// are rejected at the service boundary.
func (s Subject) Valid() bool {
	switch s {
	case SubjectPE, SubjectEnglish, SubjectChemistry, SubjectMaths, SubjectPhysics:
		return true
	}
	return false
}

func (s Subject) String() string {
	return string(s)
}
