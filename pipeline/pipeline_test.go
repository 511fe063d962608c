package pipeline

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
)

type stubRender struct {
	name string
	data any
}

func (s stubRender) Render(w http.ResponseWriter) error {
	_, err := w.Write([]byte("view:" + s.name))
	return err
}

func (s stubRender) WriteContentType(w http.ResponseWriter) {}

type stubHTML struct {
	last gin.H
}

func (s *stubHTML) Instance(name string, data any) render.Render {
	s.last, _ = data.(gin.H)
	return stubRender{name: name, data: data}
}

func newEngine(o *Orchestrator, handlers ...gin.HandlerFunc) (*gin.Engine, *stubHTML) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	html := &stubHTML{}
	r.HTMLRender = html
	r.GET("/", handlers...)
	return r, html
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestChainRunsStepsInOrderAndSharesState(t *testing.T) {
	var order []string
	o := &Orchestrator{}
	first := func(c *gin.Context, st *State) Outcome {
		order = append(order, "first")
		st.Redirect = "/somewhere"
		return Next()
	}
	second := func(c *gin.Context, st *State) Outcome {
		order = append(order, "second")
		return Redirect(st.Redirect)
	}
	third := func(c *gin.Context, st *State) Outcome {
		order = append(order, "third")
		return Next()
	}

	r, _ := newEngine(o, o.Chain(first, second, third))
	w := serve(r)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/somewhere", w.Header().Get("Location"))
}

func TestChainRender(t *testing.T) {
	o := &Orchestrator{
		BeforeRender: func(c *gin.Context, st *State, data gin.H) {
			data["shared"] = true
		},
	}
	step := func(c *gin.Context, st *State) Outcome {
		return Render(http.StatusAccepted, "discussions/index", gin.H{"title": "All"})
	}

	r, html := newEngine(o, o.Chain(step))
	w := serve(r)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "view:discussions/index", w.Body.String())
	assert.Equal(t, "All", html.last["title"])
	assert.Equal(t, true, html.last["shared"])
}

func TestChainFailForwardsError(t *testing.T) {
	boom := errors.New("boom")
	var seen error
	o := &Orchestrator{}
	errorStage := func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			seen = c.Errors.Last().Err
			c.String(http.StatusTeapot, "handled")
		}
	}
	after := false
	step := func(c *gin.Context, st *State) Outcome { return Fail(boom) }
	never := func(c *gin.Context, st *State) Outcome { after = true; return Next() }

	r, _ := newEngine(o, errorStage, o.Chain(step, never))
	w := serve(r)

	assert.Equal(t, boom, seen)
	assert.False(t, after)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestChainFallsThroughToNextHandler(t *testing.T) {
	o := &Orchestrator{}
	step := func(c *gin.Context, st *State) Outcome { return Next() }
	tail := func(c *gin.Context) { c.String(http.StatusOK, "tail") }

	r, _ := newEngine(o, o.Chain(step), tail)
	w := serve(r)

	assert.Equal(t, "tail", w.Body.String())
}

func TestBeforeRedirectSeesState(t *testing.T) {
	var flash string
	o := &Orchestrator{
		BeforeRedirect: func(c *gin.Context, st *State, _ gin.H) { flash = st.Flash },
	}
	step := func(c *gin.Context, st *State) Outcome {
		st.Flash = "Discussion created."
		return Redirect("/discussions/1")
	}

	r, _ := newEngine(o, o.Chain(step))
	serve(r)

	assert.Equal(t, "Discussion created.", flash)
}

func TestOutcomeAccessors(t *testing.T) {
	assert.True(t, Next().IsNext())
	assert.False(t, Redirect("/x").IsNext())
	assert.Equal(t, "/x", Redirect("/x").Target())
	assert.Equal(t, "v", Render(200, "v", nil).View())
	assert.Equal(t, gin.H{"a": 1}, Render(200, "v", gin.H{"a": 1}).Data())
	err := errors.New("e")
	assert.Equal(t, err, Fail(err).Err())
}
