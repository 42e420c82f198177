package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"railticket/internal/domain"
	"railticket/internal/pkg/jwt"
	"railticket/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	usernameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{5,29}$`)
	emailRe     = regexp.MustCompile(`.+@.+`)
	cnMobileRe  = regexp.MustCompile(`^1\d{10}$`)
	anyPhoneRe  = regexp.MustCompile(`^\d{5,20}$`)
	digitOnlyRe = regexp.MustCompile(`\d`)
)

type Service struct {
	users    UserRepository
	sessions SessionRepository
	codes    AuthCodeRepository
	events   Broadcaster
	tokens   *jwt.Service
	seeders  []DirectorySeeder

	resetTTL time.Duration
	qrTTL    time.Duration

	now func() time.Time
}

func NewService(users UserRepository, sessions SessionRepository, codes AuthCodeRepository,
	events Broadcaster, tokens *jwt.Service, resetTTL, qrTTL time.Duration, seeders ...DirectorySeeder) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		codes:    codes,
		events:   events,
		tokens:   tokens,
		seeders:  seeders,
		resetTTL: resetTTL,
		qrTTL:    qrTTL,
		now:      time.Now,
	}
}

// Register creates the account and seeds the owner into every registered
// directory as themselves.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByIdentifiers(ctx, req.Username, req.Email, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	benefit := req.Benefit
	if benefit == "" {
		benefit = domain.BenefitAdult
	}

	u := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		PhoneCode:    req.PhoneCode,
		PhoneNumber:  req.PhoneNumber,
		IDType:       req.IDType,
		IDNo:         req.IDNo,
		FullName:     req.FullName,
		Benefit:      benefit,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	// directory seeding is best effort; the account itself is already in
	for _, seeder := range s.seeders {
		_ = seeder.EnsureSelf(ctx, u)
	}

	return u, nil
}

func validateRegistration(req RegisterRequest) error {
	if !usernameRe.MatchString(req.Username) {
		return ErrInvalidUsername
	}
	if len(req.Password) < 6 {
		return ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !idNoDigitsOK(req.IDType, req.IDNo) {
		return ErrInvalidIDNo
	}
	if !phoneOK(req.PhoneCode, req.PhoneNumber) {
		return ErrInvalidPhone
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// idNoDigitsOK applies per-document digit-count heuristics rather than
// full checksum validation.
func idNoDigitsOK(idType domain.IDType, idNo string) bool {
	n := len(digitOnlyRe.FindAllString(idNo, -1))
	switch idType {
	case domain.IDResident:
		return n >= 17 && n <= 18
	case domain.IDChinesePassport, domain.IDForeignPassport:
		return n >= 5 && n <= 18
	default:
		return n >= 8 && n <= 18
	}
}

func phoneOK(code, number string) bool {
	if code == "+86" {
		return cnMobileRe.MatchString(number)
	}
	return anyPhoneRe.MatchString(number)
}

// Login accepts the username, email or phone number as the account.
func (s *Service) Login(ctx context.Context, account, password string) (string, *domain.User, error) {
	u, err := s.users.FindByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAccountNotFound
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrWrongPassword
	}

	token, err := s.tokens.GenerateToken(u.Username)
	if err != nil {
		return "", nil, err
	}

	if err := s.SetSession(ctx, u.Username); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// RequestReset issues a fresh 6-digit code. The code is returned to the
// caller because the demo has no mail or SMS channel.
func (s *Service) RequestReset(ctx context.Context, account string) (string, error) {
	if _, err := s.users.FindByAccount(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrResetAccountNotFound
		}
		return "", err
	}

	code := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	rc := &domain.ResetCode{Account: account, Code: code, CreatedAt: s.now()}
	if err := s.codes.SaveResetCode(ctx, rc); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyResetCode checks the code without consuming it, so the UI can
// gate the new-password step separately from the final submit.
func (s *Service) VerifyResetCode(ctx context.Context, account, code string) error {
	rc, err := s.codes.GetResetCode(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotSent
		}
		return err
	}
	if s.now().Sub(rc.CreatedAt) > s.resetTTL {
		return ErrCodeExpired
	}
	if rc.Code != code {
		return ErrCodeMismatch
	}
	return nil
}

// ResetPassword re-verifies the code, replaces the password and consumes
// the code.
func (s *Service) ResetPassword(ctx context.Context, account, code, newPassword string) error {
	if err := s.VerifyResetCode(ctx, account, code); err != nil {
		return err
	}
	if !passwordStrongEnough(newPassword) {
		return ErrWeakPassword
	}

	u, err := s.users.FindByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetAccountNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	return s.codes.DeleteResetCode(ctx, account)
}

// passwordStrongEnough requires at least six characters drawn from at
// least two of: letters, digits, underscore.
func passwordStrongEnough(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	classes := 0
	if strings.ContainsFunc(pw, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) {
		classes++
	}
	if strings.ContainsFunc(pw, func(r rune) bool { return r >= '0' && r <= '9' }) {
		classes++
	}
	if strings.ContainsRune(pw, '_') {
		classes++
	}
	return classes >= 2
}

// CreateQrSession opens a scan-to-login handshake. The returned content
// is what the page renders as the QR code.
func (s *Service) CreateQrSession(ctx context.Context) (*domain.QrSession, string, error) {
	q := &domain.QrSession{
		ID:        uuid.NewString(),
		Status:    domain.QrPending,
		CreatedAt: s.now(),
	}
	if err := s.codes.CreateQrSession(ctx, q); err != nil {
		return nil, "", err
	}
	return q, "LOGIN:" + q.ID, nil
}

// QrSessionStatus reads the handshake state. Unknown and stale sessions
// both read as expired.
func (s *Service) QrSessionStatus(ctx context.Context, id string) (*domain.QrSession, error) {
	q, err := s.codes.GetQrSession(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.QrSession{ID: id, Status: domain.QrExpired}, nil
		}
		return nil, err
	}
	if q.Status != domain.QrExpired && s.now().Sub(q.CreatedAt) > s.qrTTL {
		q.Status = domain.QrExpired
		if err := s.codes.UpdateQrSession(ctx, q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (s *Service) MarkQrScanned(ctx context.Context, id string) (*domain.QrSession, error) {
	q, err := s.QrSessionStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status == domain.QrExpired {
		return nil, ErrQrSessionExpired
	}

	q.Status = domain.QrScanned
	if err := s.codes.UpdateQrSession(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// MarkQrConfirmed completes the handshake and logs the account in on the
// waiting page.
func (s *Service) MarkQrConfirmed(ctx context.Context, id, account string) (string, *domain.QrSession, error) {
	q, err := s.QrSessionStatus(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if q.Status == domain.QrExpired {
		return "", nil, ErrQrSessionExpired
	}

	u, err := s.users.FindByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAccountNotFound
		}
		return "", nil, err
	}

	q.Status = domain.QrConfirmed
	q.Account = u.Username
	if err := s.codes.UpdateQrSession(ctx, q); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.GenerateToken(u.Username)
	if err != nil {
		return "", nil, err
	}
	if err := s.SetSession(ctx, u.Username); err != nil {
		return "", nil, err
	}
	return token, q, nil
}

// GetSession returns the current session pointer, or nil when nobody is
// logged in.
func (s *Service) GetSession(ctx context.Context) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) SetSession(ctx context.Context, username string) error {
	if err := s.sessions.Set(ctx, username); err != nil {
		return err
	}
	s.notifySession(username)
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.notifySession("")
	return nil
}

func (s *Service) Me(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetAccountNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) notifySession(username string) {
	if s.events != nil {
		s.events.SessionChanged(username)
	}
}
