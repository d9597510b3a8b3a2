package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inkpress/inkpress/internal/domain/entity"
	repo "github.com/inkpress/inkpress/internal/domain/repository"
	"github.com/inkpress/inkpress/pkg/apperror"
	"github.com/inkpress/inkpress/pkg/helpers"
	"github.com/inkpress/inkpress/pkg/slug"
)

type PostService struct {
	Posts        repo.PostRepository
	ES           *elasticsearch.Client
	ESPostsIndex string
	GCS          *storage.Client
	GCSBucket    string
	Logger       *logrus.Logger
}

func NewPostService(posts repo.PostRepository, es *elasticsearch.Client, esPostsIndex string, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PostService {
	return &PostService{
		Posts:        posts,
		ES:           es,
		ESPostsIndex: esPostsIndex,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		Logger:       logger,
	}
}

// ListPublished is the default public listing.
func (s *PostService) ListPublished() ([]entity.Post, error) {
	return s.Posts.FindPublished()
}

// ListAll includes drafts; admin only at the route level.
func (s *PostService) ListAll() ([]entity.Post, error) {
	return s.Posts.FindAll()
}

func (s *PostService) ListByAuthor(authorID uint) ([]entity.Post, error) {
	return s.Posts.FindByAuthor(authorID)
}

func (s *PostService) ListByCategory(categoryID uint) ([]entity.Post, error) {
	return s.Posts.FindByCategory(categoryID)
}

func (s *PostService) Get(id uint) (*entity.Post, error) {
	p, err := s.Posts.FindByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NotFound("post not found")
		}
		return nil, err
	}
	return p, nil
}

// GetBySlug is a read with a write side effect: every successful lookup bumps
// the view counter through the store's atomic increment.
func (s *PostService) GetBySlug(sl string) (*entity.Post, error) {
	p, err := s.Posts.FindBySlug(sl)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NotFound("post not found")
		}
		return nil, err
	}
	if err := s.Posts.IncrementViews(p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	Published     *bool
	FeaturedImage string
	CategoryID    uint
	AuthorID      uint
}

func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	sl := slug.Make(in.Title)
	if _, err := s.Posts.FindBySlug(sl); err == nil {
		return nil, apperror.Conflict("a post with a similar title already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	published := false
	if in.Published != nil {
		published = *in.Published
	}
	p := &entity.Post{
		Title:         in.Title,
		Slug:          sl,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Published:     published,
		FeaturedImage: in.FeaturedImage,
		AuthorID:      in.AuthorID,
		CategoryID:    in.CategoryID,
	}
	if err := s.Posts.Create(p); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			// the slug pre-check is advisory; the unique index decides
			return nil, apperror.Conflict("a post with a similar title already exists")
		case errors.Is(err, repo.ErrRestricted):
			return nil, apperror.Validation("category does not exist")
		default:
			return nil, err
		}
	}

	created, err := s.Posts.FindByID(p.ID)
	if err != nil {
		return p, nil
	}
	s.indexPost(ctx, created)
	return created, nil
}

type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Published     *bool
	FeaturedImage *string
	CategoryID    *uint
}

func (s *PostService) Update(ctx context.Context, id uint, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
		// regenerate the slug only when the derived value actually changes
		if newSlug := slug.Make(*in.Title); newSlug != p.Slug {
			other, err := s.Posts.FindBySlug(newSlug)
			if err == nil && other.ID != id {
				return nil, apperror.Conflict("a post with a similar title already exists")
			}
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return nil, err
			}
			p.Slug = newSlug
		}
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if in.FeaturedImage != nil {
		p.FeaturedImage = *in.FeaturedImage
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if err := s.Posts.Update(p); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, apperror.Conflict("a post with a similar title already exists")
		case errors.Is(err, repo.ErrRestricted):
			return nil, apperror.Validation("category does not exist")
		default:
			return nil, err
		}
	}

	updated, err := s.Posts.FindByID(id)
	if err != nil {
		return p, nil
	}
	s.indexPost(ctx, updated)
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	err := s.Posts.Delete(id)
	switch {
	case err == nil:
		s.removeFromIndex(ctx, id)
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return apperror.NotFound("post not found")
	default:
		return err
	}
}

// UploadFeaturedImage stores the image in GCS and points the post at its
// public URL.
func (s *PostService) UploadFeaturedImage(ctx context.Context, id uint, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperror.ServerConfig("object storage is not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := fmt.Sprintf("posts/%d/%s%s", p.ID, uuid.NewString(), ext)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	p.FeaturedImage = url
	if err := s.Posts.Update(p); err != nil {
		return "", err
	}
	s.indexPost(ctx, p)
	return url, nil
}

// Search runs a multi_match query over title, excerpt and content.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "excerpt", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexPost mirrors the post into Elasticsearch. Best-effort: search lag is
// acceptable, a failed write request is not.
func (s *PostService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"title":      p.Title,
		"slug":       p.Slug,
		"excerpt":    p.Excerpt,
		"content":    p.Content,
		"published":  p.Published,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESPostsIndex,
		DocumentID: strconv.FormatUint(uint64(p.ID), 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

func (s *PostService) removeFromIndex(ctx context.Context, id uint) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{
		Index:      s.ESPostsIndex,
		DocumentID: strconv.FormatUint(uint64(id), 10),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
