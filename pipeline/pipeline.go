// Package pipeline runs a route as an explicit sequence of steps sharing one
// per-request State. Each step reports what should happen next through an
// Outcome instead of calling a continuation.
package pipeline

import (
	"net/http"

	"discussion-board/models"

	"github.com/gin-gonic/gin"
)

// State is threaded through every step of one request.
type State struct {
	// Skip is set by validation when the submitted form is rejected.
	Skip       bool
	FormErrors map[string][]string
	Form       models.DiscussionForm

	Redirect string
	Flash    string

	Discussion  *models.Discussion
	Discussions []models.Discussion
}

type outcomeKind int

const (
	kindNext outcomeKind = iota
	kindRedirect
	kindRender
	kindFail
)

// Outcome is the tagged result of a step.
type Outcome struct {
	kind   outcomeKind
	target string
	status int
	view   string
	data   gin.H
	err    error
}

// Next hands control to the following step.
func Next() Outcome {
	return Outcome{kind: kindNext}
}

// Redirect ends the chain with a 303 to path.
func Redirect(path string) Outcome {
	return Outcome{kind: kindRedirect, target: path}
}

// Render ends the chain by rendering view with data.
func Render(status int, view string, data gin.H) Outcome {
	return Outcome{kind: kindRender, status: status, view: view, data: data}
}

// Fail ends the chain and forwards err to the error stage.
func Fail(err error) Outcome {
	return Outcome{kind: kindFail, err: err}
}

// IsNext reports whether the outcome continues the chain.
func (o Outcome) IsNext() bool { return o.kind == kindNext }

// Target is the redirect path of a Redirect outcome.
func (o Outcome) Target() string { return o.target }

// View is the template name of a Render outcome.
func (o Outcome) View() string { return o.view }

// Data is the payload of a Render outcome.
func (o Outcome) Data() gin.H { return o.data }

// Err is the error of a Fail outcome.
func (o Outcome) Err() error { return o.err }

// Step is one stage of a route.
type Step func(c *gin.Context, st *State) Outcome

// Hook is called with the state before a redirect or render is written.
type Hook func(c *gin.Context, st *State, data gin.H)

// Orchestrator turns step sequences into gin handlers.
type Orchestrator struct {
	// BeforeRedirect runs before a redirect response is written.
	BeforeRedirect Hook
	// BeforeRender may add shared fields to a render payload.
	BeforeRender Hook
}

// Chain builds a handler running steps in order. A step only starts after the
// previous one returned. When every step returns Next the request moves on to
// the next gin handler.
func (o *Orchestrator) Chain(steps ...Step) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := &State{}
		for _, step := range steps {
			out := step(c, st)
			switch out.kind {
			case kindNext:
				continue
			case kindRedirect:
				if o.BeforeRedirect != nil {
					o.BeforeRedirect(c, st, nil)
				}
				c.Redirect(http.StatusSeeOther, out.target)
				c.Abort()
				return
			case kindRender:
				data := out.data
				if data == nil {
					data = gin.H{}
				}
				if o.BeforeRender != nil {
					o.BeforeRender(c, st, data)
				}
				c.HTML(out.status, out.view, data)
				c.Abort()
				return
			case kindFail:
				_ = c.Error(out.err)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
