package main

import (
	"log"

	"railticket/internal/config"
	"railticket/internal/database"
	"railticket/internal/domain"
	"railticket/internal/modules/points"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.ResetCode{},
		&domain.QrSession{},
		&domain.Order{},
		&domain.StandbyRequest{},
		&domain.Passenger{},
		&domain.Beneficiary{},
		&points.Wallet{},
		&points.Transaction{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM points_transactions")
	db.Exec("DELETE FROM points_wallets")
	db.Exec("DELETE FROM standby_requests")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM beneficiaries")
	db.Exec("DELETE FROM passengers")
	db.Exec("DELETE FROM qr_sessions")
	db.Exec("DELETE FROM reset_codes")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo account...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	user := domain.User{
		Username:     "demo_user",
		PasswordHash: string(hash),
		Email:        "demo@example.com",
		PhoneCode:    "+86",
		PhoneNumber:  "13800138000",
		IDType:       domain.IDResident,
		IDNo:         "110101199001011234",
		FullName:     "张三",
		Benefit:      domain.BenefitAdult,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("create user failed:", err)
	}

	log.Println("Creating saved travellers...")
	self := domain.Passenger{
		ID: uuid.NewString(), Owner: user.Username, IsSelf: true,
		Name: user.FullName, IDType: user.IDType, IDNo: user.IDNo,
		PhoneCode: user.PhoneCode, PhoneNumber: user.PhoneNumber,
		Benefit: user.Benefit, Verified: true,
	}
	companion := domain.Passenger{
		ID: uuid.NewString(), Owner: user.Username,
		Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321",
		PhoneCode: "+86", PhoneNumber: "13900139000",
		Benefit: domain.BenefitStudent, Verified: true,
	}
	if err := db.Create(&self).Error; err != nil {
		log.Fatal("create passenger failed:", err)
	}
	if err := db.Create(&companion).Error; err != nil {
		log.Fatal("create passenger failed:", err)
	}

	log.Println("Creating beneficiary directory...")
	beneficiary := domain.Beneficiary{
		ID: uuid.NewString(), Owner: user.Username,
		Name: user.FullName, IDType: user.IDType, IDNo: user.IDNo,
		PhoneCode: user.PhoneCode, PhoneNumber: user.PhoneNumber,
		Email: user.Email, EffectiveDate: "2026-01-01", Verified: true,
	}
	if err := db.Create(&beneficiary).Error; err != nil {
		log.Fatal("create beneficiary failed:", err)
	}

	log.Println("Creating sample order...")
	order := domain.Order{
		ID:     uuid.NewString(),
		Origin: "北京",
		Dest:   "上海",
		Date:   "2026-09-15",
		Passengers: []domain.TicketPassenger{
			{Name: self.Name, IDType: self.IDType, IDNo: self.IDNo},
		},
		Item: domain.OrderItem{
			TrainCode: "G100",
			SeatClass: domain.SeatSecond,
			Price:     320,
		},
		Status: domain.OrderPending,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Fatal("create order failed:", err)
	}

	log.Println("Seed complete.")
	log.Println("  demo account: demo_user / demo123")
}
