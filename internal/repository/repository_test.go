package repository_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mylibrary/internal/db"
	"mylibrary/internal/repository"
	"mylibrary/internal/repository/fake"
)

var _ = Describe("LibraryRepository", func() {
	const userID = "11111111-2222-3333-4444-555555555555"

	var (
		storage *fake.Storage
		repo    *repository.LibraryRepository
		ctx     context.Context
	)

	BeforeEach(func() {
		storage = new(fake.Storage)
		repo = repository.NewLibraryRepository(storage)
		ctx = context.Background()
	})

	Describe("MigrateAndSeed", func() {
		It("migrates every table and seeds the demo user", func() {
			Expect(repo.MigrateAndSeed(ctx)).To(Succeed())

			Expect(storage.MigrateTableCallCount()).To(Equal(1))
			tables := storage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(3))

			Expect(storage.SeedTableCallCount()).To(Equal(1))
			_, records := storage.SeedTableArgsForCall(0)
			users, ok := records.(*[]repository.User)
			Expect(ok).To(BeTrue())
			Expect(*users).To(HaveLen(1))
			Expect((*users)[0].Username).To(Equal("demo"))
			Expect((*users)[0].PasswordHash).NotTo(BeEmpty())
		})

		When("migration fails", func() {
			It("returns the wrapped error", func() {
				storage.MigrateTableReturns(errors.New("no connection"))

				err := repo.MigrateAndSeed(ctx)

				Expect(err).To(MatchError(ContainSubstring("migrate table(s)")))
				Expect(storage.SeedTableCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			It("returns the stored user", func() {
				storage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
					Expect(column).To(Equal("username"))
					Expect(value).To(Equal("testuser"))
					user := dest.(*repository.User)
					user.ID = userID
					user.Username = "testuser"
					return nil
				}

				user, err := repo.GetUserByUsername(ctx, "testuser")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(userID))
			})
		})

		When("no row matches", func() {
			It("returns ErrUserNotFound", func() {
				storage.GetOneByReturns(db.ErrNotFound)

				_, err := repo.GetUserByUsername(ctx, "ghost")

				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetUserByToken", func() {
		When("the token key resolves", func() {
			It("returns the owning user", func() {
				storage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
					switch column {
					case "key":
						token := dest.(*repository.AuthToken)
						token.Key = value.(string)
						token.UserID = userID
					case "id":
						Expect(value).To(Equal(userID))
						user := dest.(*repository.User)
						user.ID = userID
						user.Username = "testuser"
					}
					return nil
				}

				user, err := repo.GetUserByToken(ctx, "abc123")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("testuser"))
				Expect(storage.GetOneByCallCount()).To(Equal(2))
			})
		})

		When("the key is unknown", func() {
			It("returns ErrTokenNotFound", func() {
				storage.GetOneByReturns(db.ErrNotFound)

				_, err := repo.GetUserByToken(ctx, "nope")

				Expect(err).To(MatchError(repository.ErrTokenNotFound))
			})
		})
	})

	Describe("GetToken", func() {
		When("the user has no token yet", func() {
			It("returns ErrTokenNotFound", func() {
				storage.GetOneByReturns(db.ErrNotFound)

				_, err := repo.GetToken(ctx, userID)

				Expect(err).To(MatchError(repository.ErrTokenNotFound))
			})
		})
	})

	Describe("ListBooks", func() {
		It("returns the page together with the total count", func() {
			storage.CountByReturns(12, nil)
			storage.GetPageStub = func(_ context.Context, column string, value any, order string, offset, limit int, dest any) error {
				Expect(column).To(Equal("user_id"))
				Expect(value).To(Equal(userID))
				Expect(order).To(Equal("id asc"))
				Expect(offset).To(Equal(10))
				Expect(limit).To(Equal(10))
				books := dest.(*[]repository.Book)
				*books = append(*books, repository.Book{
					ID:              11,
					UserID:          userID,
					Title:           "Test Book",
					PublicationDate: time.Now(),
				})
				return nil
			}

			books, count, err := repo.ListBooks(ctx, userID, 10, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(12)))
			Expect(books).To(HaveLen(1))
			Expect(books[0].Title).To(Equal("Test Book"))
		})

		When("counting fails", func() {
			It("returns the wrapped error without fetching a page", func() {
				storage.CountByReturns(0, errors.New("no connection"))

				_, _, err := repo.ListBooks(ctx, userID, 0, 10)

				Expect(err).To(MatchError(ContainSubstring("count books")))
				Expect(storage.GetPageCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetBook", func() {
		When("the id is unknown", func() {
			It("returns ErrBookNotFound", func() {
				storage.GetOneByReturns(db.ErrNotFound)

				_, err := repo.GetBook(ctx, 99)

				Expect(err).To(MatchError(repository.ErrBookNotFound))
			})
		})
	})

	Describe("DeleteBook", func() {
		When("a row is removed", func() {
			It("succeeds", func() {
				storage.DeleteRecordReturns(1, nil)

				Expect(repo.DeleteBook(ctx, 7)).To(Succeed())

				_, record := storage.DeleteRecordArgsForCall(0)
				book, ok := record.(*repository.Book)
				Expect(ok).To(BeTrue())
				Expect(book.ID).To(Equal(uint(7)))
			})
		})

		When("no row matches", func() {
			It("returns ErrBookNotFound", func() {
				storage.DeleteRecordReturns(0, nil)

				err := repo.DeleteBook(ctx, 7)

				Expect(err).To(MatchError(repository.ErrBookNotFound))
			})
		})
	})
})
