package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"discussion-board/middleware"
	"discussion-board/models"
	"discussion-board/pipeline"
	"discussion-board/services"

	"github.com/gin-gonic/gin"
)

type DiscussionHandler struct {
	discussionService services.DiscussionService
}

func NewDiscussionHandler(discussionService services.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

func discussionPath(id uint) string {
	return fmt.Sprintf("/discussions/%d", id)
}

func parseDiscussionID(c *gin.Context, op string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewStoreError(op, models.ErrMalformedID)
	}
	return uint(id), nil
}

func currentUser(c *gin.Context) (models.User, bool) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return models.User{}, false
	}
	return *user, true
}

// BindForm decodes the submitted discussion form into the state.
func (h *DiscussionHandler) BindForm(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	if err := c.ShouldBind(&st.Form); err != nil {
		return pipeline.Fail(models.ErrorBadRequest{Err: err})
	}
	return pipeline.Next()
}

// New renders the creation form, with the rejected input when validation
// skipped the create.
func (h *DiscussionHandler) New(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	data := gin.H{
		"page":  "new-discussion",
		"title": "New Discussion",
	}
	status := http.StatusOK
	if st.Skip {
		status = http.StatusUnprocessableEntity
		data["errors"] = st.FormErrors
		data["form"] = st.Form.Input()
	}
	return pipeline.Render(status, "discussions/new", data)
}

func (h *DiscussionHandler) Create(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	if st.Skip {
		return pipeline.Next()
	}

	user, ok := currentUser(c)
	if !ok {
		return pipeline.Fail(models.ErrorUnauthorized{Message: "You must be signed in to do that"})
	}

	discussion, err := h.discussionService.CreateDiscussion(models.DiscussionParams(st.Form, user))
	if err != nil {
		log.Printf("Error creating discussion: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Discussion = discussion
	st.Redirect = discussionPath(discussion.ID)
	st.Flash = "Discussion created."
	return pipeline.Next()
}

func (h *DiscussionHandler) RedirectView(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	if st.Redirect != "" {
		return pipeline.Redirect(st.Redirect)
	}
	return pipeline.Next()
}

func (h *DiscussionHandler) Index(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	discussions, err := h.discussionService.GetDiscussions()
	if err != nil {
		log.Printf("Error fetching discussions: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Discussions = discussions
	return pipeline.Next()
}

func (h *DiscussionHandler) IndexView(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	return pipeline.Render(http.StatusOK, "discussions/index", gin.H{
		"page":        "discussions",
		"title":       "All Discussions",
		"discussions": st.Discussions,
	})
}

// Show loads one discussion and counts the view. Every successful read adds
// one, whoever the reader is.
func (h *DiscussionHandler) Show(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	discussion, err := h.findForView(c)
	if err == nil {
		discussion.Views++
		err = h.discussionService.SaveDiscussion(discussion)
	}
	if err != nil {
		log.Printf("Error fetching discussion by ID: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Discussion = discussion
	return pipeline.Next()
}

func (h *DiscussionHandler) ShowView(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	return pipeline.Render(http.StatusOK, "discussions/show", gin.H{
		"page":       "discussion-details",
		"title":      "Discussion Details",
		"discussion": st.Discussion,
	})
}

// Edit renders the edit form directly; it has no separate view step.
func (h *DiscussionHandler) Edit(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	discussion, err := h.findForView(c)
	if err != nil {
		log.Printf("Error fetching discussion by ID: %s", err.Error())
		return pipeline.Fail(err)
	}

	return pipeline.Render(http.StatusOK, "discussions/edit", gin.H{
		"discussion": discussion,
		"page":       "edit-discussion",
		"title":      "Edit Discussion",
	})
}

// Update stores the discussion as it was before the write, not the updated
// row. A missing id stores nil and still redirects to the detail page.
func (h *DiscussionHandler) Update(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	user, ok := currentUser(c)
	if !ok {
		return pipeline.Fail(models.ErrorUnauthorized{Message: "You must be signed in to do that"})
	}

	id, err := parseDiscussionID(c, "findByIdAndUpdate")
	var discussion *models.Discussion
	if err == nil {
		discussion, err = h.discussionService.UpdateDiscussion(id, models.DiscussionParams(st.Form, user))
	}
	if err != nil {
		log.Printf("Error updating discussion by ID: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Redirect = discussionPath(id)
	st.Discussion = discussion
	st.Flash = "Discussion updated."
	return pipeline.Next()
}

func (h *DiscussionHandler) Delete(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	id, err := parseDiscussionID(c, "findByIdAndRemove")
	if err == nil {
		err = h.discussionService.DeleteDiscussion(id)
	}
	if err != nil {
		log.Printf("Error deleting discussion by ID: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Redirect = "/discussions"
	st.Flash = "Discussion deleted."
	return pipeline.Next()
}

func (h *DiscussionHandler) findForView(c *gin.Context) (*models.Discussion, error) {
	id, err := parseDiscussionID(c, "findById")
	if err != nil {
		return nil, err
	}
	return h.discussionService.GetDiscussion(id)
}
