package web

import (
	"github.com/aanand-mishra/text-students-api/internal/analyzer"
	"github.com/aanand-mishra/text-students-api/internal/types"
	"github.com/aanand-mishra/text-students-api/internal/utils/response"
)

// SiteName is shown in the header of every page.
const SiteName = "Text & Student API"

// Base is embedded in every page's data.
type Base struct {
	Title string
	Name  string
	Flash response.Flash
}

// NewBase fills in the site name.
func NewBase(title string) Base {
	return Base{Title: title, Name: SiteName}
}

// TechGroup is one row of the stack listing on the home page.
type TechGroup struct {
	Area  string
	Items []string
}

// HomeData backs home.html.
type HomeData struct {
	Base
	Techs []TechGroup
}

// AnalysisData backs post.html and result.html. Result is nil until
// something has been analysed.
type AnalysisData struct {
	Base
	Content string
	Result  *analyzer.Result
}

// StudentFormData backs add_student.html. Form holds the previous
// submission when the page is re-rendered after a validation error.
type StudentFormData struct {
	Base
	Form types.StudentForm
}
