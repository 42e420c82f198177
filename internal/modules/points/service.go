package points

import (
	"context"
	"errors"

	"railticket/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient points")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Balance returns the member's wallet, creating an empty one on first
// touch.
func (s *Service) Balance(ctx context.Context, owner string) (*Wallet, error) {
	w, err := s.getWallet(ctx, owner)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	w = &Wallet{Owner: owner, Balance: 0}
	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		if repository.IsUniqueViolation(err) {
			return s.getWallet(ctx, owner)
		}
		return nil, err
	}
	return w, nil
}

// Credit adds points, typically the whole-yuan fare total of a paid order.
func (s *Service) Credit(ctx context.Context, owner string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w Wallet
		if err := lockWallet(tx, owner, &w); err != nil {
			return err
		}

		w.Balance += amount
		if err := tx.Model(&Wallet{}).Where("id = ?", w.ID).Update("balance", w.Balance).Error; err != nil {
			return err
		}
		return tx.Create(&Transaction{WalletID: w.ID, Amount: amount, Type: TransactionTypeCredit}).Error
	})
}

// Spend deducts points, failing without side effects when the balance is
// short.
func (s *Service) Spend(ctx context.Context, owner string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w Wallet
		if err := lockWallet(tx, owner, &w); err != nil {
			return err
		}
		if w.Balance < amount {
			return ErrInsufficientFunds
		}

		w.Balance -= amount
		if err := tx.Model(&Wallet{}).Where("id = ?", w.ID).Update("balance", w.Balance).Error; err != nil {
			return err
		}
		return tx.Create(&Transaction{WalletID: w.ID, Amount: amount, Type: TransactionTypeSpend}).Error
	})
}

func (s *Service) ListTransactions(ctx context.Context, owner string) ([]Transaction, error) {
	w, err := s.Balance(ctx, owner)
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", w.ID).Order("created_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *Service) getWallet(ctx context.Context, owner string) (*Wallet, error) {
	var w Wallet
	if err := s.db.WithContext(ctx).Where("owner = ?", owner).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// lockWallet loads the row FOR UPDATE, creating it on first use. The
// create path retries the locked read when a concurrent insert wins.
func lockWallet(tx *gorm.DB, owner string, w *Wallet) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("owner = ?", owner).First(w).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	*w = Wallet{Owner: owner, Balance: 0}
	if err := tx.Create(w).Error; err != nil {
		if repository.IsUniqueViolation(err) {
			return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("owner = ?", owner).First(w).Error
		}
		return err
	}
	return nil
}
