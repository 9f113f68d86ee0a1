package comments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCommentStore struct {
	created []*Comment
	total   int64
}

func (f *fakeCommentStore) Create(ctx context.Context, comment *Comment) error {
	comment.ID = primitive.NewObjectID()
	f.created = append(f.created, comment)
	return nil
}

func (f *fakeCommentStore) CountAll(ctx context.Context) (int64, error) {
	return f.total, nil
}

type increment struct {
	postID primitive.ObjectID
	delta  int64
}

type fakePostService struct {
	exists     bool
	increments []increment
	incErr     error
}

func (f *fakePostService) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return f.exists, nil
}

func (f *fakePostService) IncrementCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	f.increments = append(f.increments, increment{postID: id, delta: delta})
	return f.incErr
}

func newCommentRouter(store *fakeCommentStore, posts *fakePostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	handler := NewHandler(store, nil, posts, log)
	r := gin.New()
	r.POST("/comments/post-comment", handler.Create)
	return r
}

func postComment(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/comments/post-comment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_IncrementsCommentCountByOne(t *testing.T) {
	postID := primitive.NewObjectID()
	store := &fakeCommentStore{}
	posts := &fakePostService{exists: true}
	r := newCommentRouter(store, posts)

	w := postComment(r, `{"postId":"`+postID.Hex()+`","text":"  nice read  "}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "nice read", store.created[0].Text)

	require.Len(t, posts.increments, 1)
	assert.Equal(t, postID, posts.increments[0].postID)
	assert.Equal(t, int64(1), posts.increments[0].delta)
}

func TestCreate_UnknownPost(t *testing.T) {
	store := &fakeCommentStore{}
	posts := &fakePostService{exists: false}
	r := newCommentRouter(store, posts)

	w := postComment(r, `{"postId":"`+primitive.NewObjectID().Hex()+`","text":"hello"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.created)
	assert.Empty(t, posts.increments)
}

func TestCreate_CounterFailureStillStoresComment(t *testing.T) {
	store := &fakeCommentStore{}
	posts := &fakePostService{exists: true, incErr: errors.New("posts collection unavailable")}
	r := newCommentRouter(store, posts)

	w := postComment(r, `{"postId":"`+primitive.NewObjectID().Hex()+`","text":"hello"}`)

	// the comment is kept; the understated counter is logged and drifts
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	require.Len(t, posts.increments, 1)
}

func TestCreate_BlankTextRejected(t *testing.T) {
	store := &fakeCommentStore{}
	posts := &fakePostService{exists: true}
	r := newCommentRouter(store, posts)

	w := postComment(r, `{"postId":"`+primitive.NewObjectID().Hex()+`","text":"   "}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
	assert.Empty(t, posts.increments)
}
