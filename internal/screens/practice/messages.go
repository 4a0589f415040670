package practice

import "geotutor/internal/session"

// annotationMsg delivers the advisor's note for the graded problem.
type annotationMsg struct {
	Note string
}

// exampleReadyMsg delivers a worked example for display.
type exampleReadyMsg struct {
	Example *session.Example
}
