package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// newsletterRepository implements the domain.NewsletterRepository interface.
type newsletterRepository struct {
	q *query.Query
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		q: query.Use(db),
	}
}

// Subscribe inserts a subscription, keeping the original date when the email is already subscribed.
func (repo *newsletterRepository) Subscribe(ctx context.Context, email string) error {
	subscription := &model.NewsletterSubscriptionModel{
		ID:           uuid.New(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}

	err := repo.q.NewsletterSubscriptionModel.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(subscription)
	if err != nil {
		return translateWriteError(err, nil, "failed to subscribe email")
	}

	return nil
}

// DeleteByEmail removes the subscription of an email.
func (repo *newsletterRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := repo.q.NewsletterSubscriptionModel.WithContext(ctx).
		Where(repo.q.NewsletterSubscriptionModel.Email.Eq(email)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete newsletter subscription")
	}

	return result.RowsAffected, nil
}

// ExistsByEmail reports whether an email is subscribed.
func (repo *newsletterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := repo.q.NewsletterSubscriptionModel.WithContext(ctx).
		Where(repo.q.NewsletterSubscriptionModel.Email.Eq(email)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check newsletter subscription")
	}

	return count > 0, nil
}

// FindSubscribedEmails retrieves the subscribed subset of emails in one query.
func (repo *newsletterRepository) FindSubscribedEmails(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	n := repo.q.NewsletterSubscriptionModel
	var subscribed []string
	if err := n.WithContext(ctx).Where(n.Email.In(emails...)).Pluck(n.Email, &subscribed); err != nil {
		return nil, errors.Wrap(err, "failed to find subscribed emails")
	}

	return subscribed, nil
}
