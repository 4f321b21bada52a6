package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/redis"
)

const (
	programKeyPrefix  = "program:"
	programSlugPrefix = "program:slug:"
	programIndexKey   = "programs"
	programSeqKey     = "program:seq"

	maxSlugAttempts = 64
)

// ProgramDocument is the JSON document stored per program.
type ProgramDocument struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	IsFeatured  bool      `json:"isFeatured"`
	Slug        string    `json:"slug"`
	CreatedBy   *int64    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProgramDocument(m *model.Program) *ProgramDocument {
	return &ProgramDocument{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Image:       m.Image,
		Status:      string(m.Status),
		IsFeatured:  m.IsFeatured,
		Slug:        m.Slug,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProgramModel(d *ProgramDocument) *model.Program {
	return &model.Program{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
		Image:       d.Image,
		Status:      model.ProgramStatus(d.Status),
		IsFeatured:  d.IsFeatured,
		Slug:        d.Slug,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   utc(d.CreatedAt),
		UpdatedAt:   utc(d.UpdatedAt),
	}
}

// ProgramRepository keeps programs as JSON documents in redis:
//
//	program:<id>          document
//	program:slug:<slug>   id
//	programs              set of ids
//	program:seq           id sequence
type ProgramRepository struct {
	rdb redis.RedisAdapter
	now func() time.Time
}

func NewProgramRepository(rdb redis.RedisAdapter) *ProgramRepository {
	return &ProgramRepository{rdb: rdb, now: time.Now}
}

func programKey(id int64) string {
	return programKeyPrefix + strconv.FormatInt(id, 10)
}

// Create assigns an id and a unique slug derived from the title. A taken
// slug gets "-<id>" appended, then "-<id>-<n>" until a free one is found.
func (r *ProgramRepository) Create(ctx context.Context, p *model.Program) (*model.Program, error) {
	if !p.Status.Valid() {
		return nil, checkEnum("status", string(p.Status), false)
	}
	id, err := r.rdb.Incr(ctx, programSeqKey)
	if err != nil {
		return nil, fmt.Errorf("allocate program id: %w", err)
	}

	slug := p.Slug
	if slug == "" {
		slug = model.Slugify(p.Title)
	}
	slug, err = r.reserveSlug(ctx, slug, id)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	doc := toProgramDocument(p)
	doc.ID = id
	doc.Slug = slug
	doc.CreatedAt = now
	doc.UpdatedAt = now

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(programKey(id), raw, 0)
		pipe.SAdd(programIndexKey, id)
		return nil
	})
	if err != nil {
		_ = r.rdb.Del(ctx, programSlugPrefix+slug)
		return nil, err
	}
	return toProgramModel(doc), nil
}

func (r *ProgramRepository) reserveSlug(ctx context.Context, base string, id int64) (string, error) {
	idValue := []byte(strconv.FormatInt(id, 10))
	slug := base
	for n := 0; n < maxSlugAttempts; n++ {
		switch n {
		case 0:
		case 1:
			slug = fmt.Sprintf("%s-%d", base, id)
		default:
			slug = fmt.Sprintf("%s-%d-%d", base, id, n)
		}
		ok, err := r.rdb.SetNX(ctx, programSlugPrefix+slug, idValue, 0)
		if err != nil {
			return "", fmt.Errorf("reserve program slug: %w", err)
		}
		if ok {
			return slug, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	raw, err := r.rdb.Get(ctx, programKey(id))
	if err != nil {
		if errors.Is(err, redis.NilError) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var doc ProgramDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode program %d: %w", id, err)
	}
	return toProgramModel(&doc), nil
}

func (r *ProgramRepository) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	raw, err := r.rdb.Get(ctx, programSlugPrefix+slug)
	if err != nil {
		if errors.Is(err, redis.NilError) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt slug index for %q: %w", slug, err)
	}
	return r.GetByID(ctx, id)
}

// List returns every stored program, newest first.
func (r *ProgramRepository) List(ctx context.Context) ([]*model.Program, error) {
	members, err := r.rdb.SMembers(ctx, programIndexKey)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []*model.Program{}, nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = programKeyPrefix + m
	}
	values, err := r.rdb.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	programs := make([]*model.Program, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			continue
		}
		var doc ProgramDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		programs = append(programs, toProgramModel(&doc))
	}
	sort.SliceStable(programs, func(i, j int) bool {
		if programs[i].CreatedAt.Equal(programs[j].CreatedAt) {
			return programs[i].ID > programs[j].ID
		}
		return programs[i].CreatedAt.After(programs[j].CreatedAt)
	})
	return programs, nil
}

// Update replaces the stored document. Slug, createdBy and createdAt are
// taken from the existing document.
func (r *ProgramRepository) Update(ctx context.Context, p *model.Program) (*model.Program, error) {
	if !p.Status.Valid() {
		return nil, checkEnum("status", string(p.Status), false)
	}
	existing, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	doc := toProgramDocument(p)
	doc.Slug = existing.Slug
	doc.CreatedBy = existing.CreatedBy
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = r.now().UTC()

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.Set(ctx, programKey(p.ID), raw, 0); err != nil {
		return nil, err
	}
	return toProgramModel(doc), nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(programKey(id), programSlugPrefix+existing.Slug)
		pipe.SRem(programIndexKey, id)
		return nil
	})
}
