package advisor

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"geotutor/internal/geometry"
	"geotutor/internal/problemgen"
)

// OntologyAdvisor derives explanation annotations from a local RDF/XML
// ontology artifact. The artifact declares the shape classes and a rule
// per shape whose consequent carries an explanation literal such as
// "Area = ½ × base × height".
type OntologyAdvisor struct {
	classes      map[geometry.Kind]bool
	explanations map[geometry.Kind]string
}

// DefaultOntologyPath resolves the ontology artifact path:
// 1. GEOTUTOR_ONTOLOGY environment variable
// 2. GeoTutor.owl next to the profile data under the XDG data dir
func DefaultOntologyPath() string {
	if p := os.Getenv("GEOTUTOR_ONTOLOGY"); p != "" {
		return p
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "GeoTutor.owl"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "geotutor", "GeoTutor.owl")
}

// TryLoad loads the ontology at path. A missing artifact or a parse
// failure is reported on stderr and yields a nil advisor; it never
// fails the caller.
func TryLoad(path string) *OntologyAdvisor {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: ontology %s not found; reasoning features disabled\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "warning: open ontology %s: %v\n", path, err)
		}
		return nil
	}
	defer f.Close()

	adv, err := parseOntology(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: parse ontology %s: %v; reasoning features disabled\n", path, err)
		return nil
	}
	return adv
}

// Annotate returns the rule-derived explanation for the problem's shape.
func (a *OntologyAdvisor) Annotate(_ context.Context, p *problemgen.Problem) (string, error) {
	if !a.classes[p.Shape] {
		return "", fmt.Errorf("shape %s not declared in ontology", p.Shape)
	}
	expl, ok := a.explanations[p.Shape]
	if !ok {
		return "", fmt.Errorf("no area rule for shape %s", p.Shape)
	}
	return expl, nil
}

// Covers reports whether the ontology declares the shape class.
func (a *OntologyAdvisor) Covers(k geometry.Kind) bool {
	return a != nil && a.classes[k]
}

// parseOntology streams the RDF/XML document once, collecting shape
// class declarations and the explanation literal inside each rule scope.
// It deliberately understands only the fragments the tutor needs; the
// rest of the ontology passes through untouched.
func parseOntology(r io.Reader) (*OntologyAdvisor, error) {
	adv := &OntologyAdvisor{
		classes:      map[geometry.Kind]bool{},
		explanations: map[geometry.Kind]string{},
	}

	dec := xml.NewDecoder(r)

	// Rule scope state: the shape named by the rule's class atom and
	// the explanation literal found in its consequent.
	ruleDepth := 0
	var ruleShape geometry.Kind
	var ruleExplanation string

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if ruleDepth > 0 {
				ruleDepth++
			} else if t.Name.Local == "Imp" {
				ruleDepth = 1
				ruleShape = ""
				ruleExplanation = ""
			}

			// Class declarations and, inside rules, class atoms both
			// reference the shape via an rdf:about / rdf:resource IRI.
			for _, attr := range t.Attr {
				if attr.Name.Local != "about" && attr.Name.Local != "resource" {
					continue
				}
				kind, ok := iriShape(attr.Value)
				if !ok {
					continue
				}
				if ruleDepth > 0 {
					ruleShape = kind
				} else if t.Name.Local == "Class" {
					adv.classes[kind] = true
				}
			}

		case xml.CharData:
			if ruleDepth > 0 {
				if text := strings.TrimSpace(string(t)); strings.HasPrefix(text, "Area =") {
					ruleExplanation = text
				}
			}

		case xml.EndElement:
			if ruleDepth > 0 {
				ruleDepth--
				if ruleDepth == 0 && ruleShape != "" && ruleExplanation != "" {
					adv.explanations[ruleShape] = ruleExplanation
				}
			}
		}
	}

	if len(adv.classes) == 0 {
		return nil, fmt.Errorf("no shape classes found")
	}
	return adv, nil
}

// iriShape extracts a shape kind from an IRI fragment like
// "http://geotutor.example/onto#Triangle".
func iriShape(iri string) (geometry.Kind, bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", false
	}
	kind, err := geometry.Parse(iri[idx+1:])
	if err != nil {
		return "", false
	}
	return kind, true
}
