package repositories_test

import (
	"fmt"
	"sync"
	"testing"

	"shop/internal/models"
	"shop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database and migrates the
// models. Each test gets its own database name so state never leaks
// between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGORMProductRepository_IDsNeverReused(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	for i := 1; i <= 3; i++ {
		p := &models.Product{
			Name:     fmt.Sprintf("Product %d", i),
			Image:    "/images/p.png",
			Category: "women",
			NewPrice: 10,
			OldPrice: 20,
		}
		assert.NoError(t, repo.Create(p))
		assert.Equal(t, uint(i), p.ID)
	}

	// Delete the second product; its id must not come back.
	assert.NoError(t, repo.Delete(2))

	next := &models.Product{Name: "Product 4", Image: "/images/p.png", Category: "men", NewPrice: 10, OldPrice: 20}
	assert.NoError(t, repo.Create(next))
	assert.Equal(t, uint(4), next.ID)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, uint(3), all[1].ID)
	assert.Equal(t, uint(4), all[2].ID)
}

func TestGORMProductRepository_DeleteMissingIsSilent(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	assert.NoError(t, repo.Delete(999))
}

func TestGORMProductRepository_GetByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	categories := []string{"women", "men", "women", "kid", "women"}
	for i, category := range categories {
		p := &models.Product{
			Name:     fmt.Sprintf("Product %d", i+1),
			Image:    "/images/p.png",
			Category: category,
			NewPrice: 10,
			OldPrice: 20,
		}
		assert.NoError(t, repo.Create(p))
	}

	women, err := repo.GetByCategory("women")
	assert.NoError(t, err)
	assert.Len(t, women, 3)
	assert.Equal(t, uint(1), women[0].ID)
	assert.Equal(t, uint(3), women[1].ID)
	assert.Equal(t, uint(5), women[2].ID)
}

func TestGORMCartRepository_IncrementAndDecrement(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	// First increment creates the row, the next ones bump it in place.
	assert.NoError(t, repo.Increment("user-1", 5))
	assert.NoError(t, repo.Increment("user-1", 5))
	assert.NoError(t, repo.Increment("user-1", 7))

	cart, err := repo.Get("user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.Cart{5: 2, 7: 1}, cart)

	// Decrement is guarded: never below zero.
	assert.NoError(t, repo.Decrement("user-1", 5))
	assert.NoError(t, repo.Decrement("user-1", 7))
	assert.NoError(t, repo.Decrement("user-1", 7))
	assert.NoError(t, repo.Decrement("user-1", 99))

	cart, err = repo.Get("user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.Cart{5: 1}, cart)

	// Carts are per user.
	other, err := repo.Get("user-2")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestMockProductRepository_IDsNeverReused(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	// The mock mirrors the store's id sequence: deleting a product must
	// not hand its id back out.
	for i := 1; i <= 3; i++ {
		p := &models.Product{Name: fmt.Sprintf("Product %d", i), Image: "/images/p.png", Category: "women"}
		assert.NoError(t, repo.Create(p))
		assert.Equal(t, uint(i), p.ID)
	}

	assert.NoError(t, repo.Delete(2))
	assert.NoError(t, repo.Delete(999), "missing ids are ignored")

	next := &models.Product{Name: "Product 4", Image: "/images/p.png", Category: "men"}
	assert.NoError(t, repo.Create(next))
	assert.Equal(t, uint(4), next.ID)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, uint(3), all[1].ID)
	assert.Equal(t, uint(4), all[2].ID)

	women, err := repo.GetByCategory("women")
	assert.NoError(t, err)
	assert.Len(t, women, 2)
	assert.Equal(t, uint(1), women[0].ID)
	assert.Equal(t, uint(3), women[1].ID)
}

func TestMockCartRepository_ConcurrentIncrements(t *testing.T) {
	repo := repositories.NewMockCartRepository()

	// Increments hold the update for their whole duration, so parallel
	// increments on one slot must not lose writes.
	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Increment("user-1", 5)
		}()
	}
	wg.Wait()

	cart, err := repo.Get("user-1")
	assert.NoError(t, err)
	assert.Equal(t, n, cart[5])
}

func TestGORMUserRepository_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Name: "alice", Email: "a@x.com", Password: "hash"}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID, "id is store-generated")

	byEmail, err := repo.GetByEmail("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.GetByEmail("missing@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The email column is unique: a second user with the same email fails.
	dup := &models.User{Name: "mallory", Email: "a@x.com", Password: "hash"}
	assert.Error(t, repo.Create(dup))
}
