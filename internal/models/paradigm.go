package models

// Paradigm identifies a design approach
type Paradigm string

const (
	ParadigmObjectOriented Paradigm = "object-oriented"
	ParadigmFunctional     Paradigm = "functional"
	ParadigmProcedural     Paradigm = "procedural"
	ParadigmHybrid         Paradigm = "hybrid"
)

// Valid returns true if p is one of the four known paradigms
func (p Paradigm) Valid() bool {
	switch p {
	case ParadigmObjectOriented, ParadigmFunctional, ParadigmProcedural, ParadigmHybrid:
		return true
	}
	return false
}

// IsCriterionTarget returns true if a criterion may favor p.
// Hybrid only ever comes out of a tie.
func (p Paradigm) IsCriterionTarget() bool {
	return p.Valid() && p != ParadigmHybrid
}

// Label returns the display name used for recommendations
func (p Paradigm) Label() string {
	switch p {
	case ParadigmObjectOriented:
		return "Object-Oriented"
	case ParadigmFunctional:
		return "Functional"
	case ParadigmProcedural:
		return "Procedural"
	case ParadigmHybrid:
		return "Hybrid Approach"
	}
	return string(p)
}

// Color returns the display color of p
func (p Paradigm) Color() Color {
	switch p {
	case ParadigmObjectOriented:
		return ColorBlue
	case ParadigmFunctional:
		return ColorGreen
	case ParadigmProcedural:
		return ColorAmber
	case ParadigmHybrid:
		return ColorPurple
	}
	return ""
}

// Color is a display color name
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorAmber  Color = "amber"
	ColorPurple Color = "purple"
)

// AllParadigms lists the paradigms in display order
func AllParadigms() []Paradigm {
	return []Paradigm{ParadigmObjectOriented, ParadigmFunctional, ParadigmProcedural, ParadigmHybrid}
}
