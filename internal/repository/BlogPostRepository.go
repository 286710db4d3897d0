package repository

import (
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"sort"
)

type BlogPostRepository struct {
	root *Repository
}

func (b *BlogPostRepository) load() []models.BlogPost {
	return loadOrSeed(b.root, models.KeyBlogPosts, models.DefaultBlogPosts)
}

func (b *BlogPostRepository) save(items []models.BlogPost) error {
	if err := b.root.persist(models.KeyBlogPosts, items); err != nil {
		return err
	}
	b.root.metrics.SetCollectionSize(models.KeyBlogPosts, len(items))
	return nil
}

func (b *BlogPostRepository) GetAll() []models.BlogPost {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()
	return b.load()
}

func (b *BlogPostRepository) Get(id int) (models.BlogPost, error) {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := b.load()
	i := indexByID(items, id)
	if i < 0 {
		return models.BlogPost{}, ErrNotFound
	}
	return items[i], nil
}

func (b *BlogPostRepository) Featured() []models.BlogPost {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	out := make([]models.BlogPost, 0)
	for _, it := range b.load() {
		if it.Featured {
			out = append(out, it)
		}
	}
	return out
}

// ByDate returns the posts newest first. ISO dates sort lexically; ties keep
// the stored order.
func (b *BlogPostRepository) ByDate() []models.BlogPost {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := b.load()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishDate > items[j].PublishDate
	})
	return items
}

func (b *BlogPostRepository) Add(post models.BlogPost) (models.BlogPost, error) {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := b.load()
	post.ID = nextID(items)
	post.Views = 0
	post.Likes = 0
	if post.PublishDate == "" {
		post.PublishDate = b.root.today()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if err := validateRecord(&post); err != nil {
		return models.BlogPost{}, err
	}

	items = append(items, post)
	if err := b.save(items); err != nil {
		return models.BlogPost{}, err
	}
	b.root.logger.Infof(providers.TypeStorage, "Blog post %d added", post.ID)
	return post, nil
}

func (b *BlogPostRepository) Update(id int, patch models.BlogPostPatch) (models.BlogPost, error) {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := b.load()
	i := indexByID(items, id)
	if i < 0 {
		return models.BlogPost{}, ErrNotFound
	}

	updated := items[i]
	updated.Apply(patch)
	if err := validateRecord(&updated); err != nil {
		return models.BlogPost{}, err
	}
	items[i] = updated
	if err := b.save(items); err != nil {
		return models.BlogPost{}, err
	}
	return updated, nil
}

func (b *BlogPostRepository) Remove(id int) ([]models.BlogPost, error) {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := withoutID(b.load(), id)
	if err := b.save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// IncrementView bumps the view counter of one post and persists right away.
// Site analytics are not touched.
func (b *BlogPostRepository) IncrementView(id int) (models.BlogPost, error) {
	return b.bump(id, func(p *models.BlogPost) { p.Views++ })
}

func (b *BlogPostRepository) IncrementLike(id int) (models.BlogPost, error) {
	return b.bump(id, func(p *models.BlogPost) { p.Likes++ })
}

func (b *BlogPostRepository) bump(id int, fn func(p *models.BlogPost)) (models.BlogPost, error) {
	b.root.mu.Lock()
	defer b.root.mu.Unlock()

	items := b.load()
	i := indexByID(items, id)
	if i < 0 {
		return models.BlogPost{}, ErrNotFound
	}
	fn(&items[i])
	if err := b.save(items); err != nil {
		return models.BlogPost{}, err
	}
	return items[i], nil
}
