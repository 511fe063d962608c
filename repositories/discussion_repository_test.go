package repositories

import (
	"fmt"
	"strings"
	"testing"

	"discussion-board/config"
	"discussion-board/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := config.OpenDatabase("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Username: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func TestDiscussionCreateAndFindByIDExpandsReferences(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	author := seedUser(t, db, "alice")
	commenter := seedUser(t, db, "bob")

	d := &models.Discussion{Title: "Hello", Description: "World", AuthorID: author.ID, Category: "general"}
	require.NoError(t, repo.Create(d, []string{"go", "web"}))
	require.NotZero(t, d.ID)

	require.NoError(t, NewCommentRepository(db).Create(&models.Comment{Content: "first", AuthorID: commenter.ID, DiscussionID: &d.ID}))
	require.NoError(t, NewCommentRepository(db).Create(&models.Comment{Content: "second", AuthorID: author.ID, DiscussionID: &d.ID}))

	found, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Title)
	assert.Equal(t, 0, found.Views)
	assert.Equal(t, "alice", found.Author.Username)
	assert.ElementsMatch(t, []string{"go", "web"}, found.TagNames())
	require.Len(t, found.Comments, 2)
	assert.Equal(t, "first", found.Comments[0].Content)
	assert.Equal(t, "bob", found.Comments[0].Author.Username)
	assert.Equal(t, "second", found.Comments[1].Content)
}

func TestDiscussionFindExpandsAuthor(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	author := seedUser(t, db, "alice")

	require.NoError(t, repo.Create(&models.Discussion{Title: "A", AuthorID: author.ID}, nil))
	require.NoError(t, repo.Create(&models.Discussion{Title: "B", AuthorID: author.ID}, nil))

	all, err := repo.Find()
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, d := range all {
		assert.Equal(t, "alice", d.Author.Username)
	}
}

func TestDiscussionFindByIDNotFound(t *testing.T) {
	repo := NewDiscussionRepository(openTestDB(t))

	_, err := repo.FindByID(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDiscussionFindByIDAndUpdateReturnsPreUpdateSnapshot(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	d := &models.Discussion{Title: "Hello", Description: "World", AuthorID: alice.ID, Category: "general", Views: 4}
	require.NoError(t, repo.Create(d, []string{"go"}))

	before, err := repo.FindByIDAndUpdate(d.ID, DiscussionUpdate{
		Columns: map[string]interface{}{"title": "X", "author_id": bob.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", before.Title)
	assert.Equal(t, alice.ID, before.AuthorID)

	after, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", after.Title)
	assert.Equal(t, "World", after.Description)
	assert.Equal(t, "general", after.Category)
	assert.Equal(t, 4, after.Views)
	assert.Equal(t, bob.ID, after.AuthorID)
	assert.Equal(t, []string{"go"}, after.TagNames())
}

func TestDiscussionFindByIDAndUpdateReplacesTags(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	alice := seedUser(t, db, "alice")

	d := &models.Discussion{Title: "T", AuthorID: alice.ID}
	require.NoError(t, repo.Create(d, []string{"old"}))

	before, err := repo.FindByIDAndUpdate(d.ID, DiscussionUpdate{
		Columns:  map[string]interface{}{"author_id": alice.ID},
		TagNames: []string{"new", "fresh"},
		SetTags:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, before.TagNames())

	after, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"new", "fresh"}, after.TagNames())
}

func TestDiscussionFindByIDAndUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)

	before, err := repo.FindByIDAndUpdate(999, DiscussionUpdate{
		Columns:  map[string]interface{}{"title": "X"},
		TagNames: []string{"ghost"},
		SetTags:  true,
	})
	require.NoError(t, err)
	assert.Nil(t, before)

	var tags int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Zero(t, tags)
}

func TestDiscussionCreateFailureLeavesNoTags(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	alice := seedUser(t, db, "alice")

	first := &models.Discussion{Title: "First", AuthorID: alice.ID}
	require.NoError(t, repo.Create(first, nil))

	clash := &models.Discussion{ID: first.ID, Title: "Clash", AuthorID: alice.ID}
	require.Error(t, repo.Create(clash, []string{"ghost", "phantom"}))

	var tags int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Zero(t, tags)

	var joins int64
	require.NoError(t, db.Table("discussion_tags").Count(&joins).Error)
	assert.Zero(t, joins)

	all, err := repo.Find()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "First", all[0].Title)
}

func TestDiscussionFindByIDAndRemove(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	alice := seedUser(t, db, "alice")

	keep := &models.Discussion{Title: "Keep", AuthorID: alice.ID}
	gone := &models.Discussion{Title: "Gone", AuthorID: alice.ID}
	require.NoError(t, repo.Create(keep, nil))
	require.NoError(t, repo.Create(gone, []string{"go"}))
	comment := &models.Comment{Content: "orphan", AuthorID: alice.ID, DiscussionID: &gone.ID}
	require.NoError(t, NewCommentRepository(db).Create(comment))

	require.NoError(t, repo.FindByIDAndRemove(gone.ID))

	_, err := repo.FindByID(gone.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := repo.Find()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	var stored models.Comment
	require.NoError(t, db.First(&stored, comment.ID).Error)
	assert.Nil(t, stored.DiscussionID)

	var joins int64
	require.NoError(t, db.Table("discussion_tags").Where("discussion_id = ?", gone.ID).Count(&joins).Error)
	assert.Zero(t, joins)

	// removing again is not an error
	assert.NoError(t, repo.FindByIDAndRemove(gone.ID))
}

func TestDiscussionSaveWritesViews(t *testing.T) {
	db := openTestDB(t)
	repo := NewDiscussionRepository(db)
	alice := seedUser(t, db, "alice")

	d := &models.Discussion{Title: "T", AuthorID: alice.ID}
	require.NoError(t, repo.Create(d, nil))

	loaded, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	loaded.Views++
	require.NoError(t, repo.Save(loaded))
	loaded.Views++
	require.NoError(t, repo.Save(loaded))

	again, err := repo.FindByID(d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Views)
	assert.Equal(t, "alice", again.Author.Username)
}

func TestTagFirstOrCreateByNamesKeepsOrderAndReusesRows(t *testing.T) {
	repo := NewTagRepository(openTestDB(t))

	first, err := repo.FirstOrCreateByNames([]string{"b", "a"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "b", first[0].Name)
	assert.Equal(t, "a", first[1].Name)

	second, err := repo.FirstOrCreateByNames([]string{"a", "c"})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[1].ID, second[0].ID)
	assert.Equal(t, "c", second[1].Name)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := repo.FirstOrCreateByNames(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
