package service

import (
	"github.com/boe-dawah/boe-backend/internal/config"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Leave *LeaveService
	Event *EventService

	Amoli         *ReportService[domain.AmoliReport]
	Moktob        *ReportService[domain.MoktobReport]
	Dawati        *ReportService[domain.DawatiReport]
	DawatiMojlish *ReportService[domain.DawatiMojlishReport]
	Jamat         *ReportService[domain.JamatReport]
	DineFera      *ReportService[domain.DineFeraReport]
	Sofor         *ReportService[domain.SoforReport]
	Talim         *ReportService[domain.TalimReport]
	Dayi          *ReportService[domain.DayiReport]
}

func NewServices(repos *repository.Repositories, cfg *config.Config, notifier Notifier) *Services {
	return &Services{
		Auth:  NewAuthService(repos.User, cfg),
		User:  NewUserService(repos.User),
		Leave: NewLeaveService(repos.Leave, repos.User),
		Event: NewEventService(repos.Event),

		Amoli:         NewReportService(domain.KindAmoli, repos.Amoli, repos.User, notifier),
		Moktob:        NewReportService(domain.KindMoktob, repos.Moktob, repos.User, notifier),
		Dawati:        NewReportService(domain.KindDawati, repos.Dawati, repos.User, notifier),
		DawatiMojlish: NewReportService(domain.KindDawatiMojlish, repos.DawatiMojlish, repos.User, notifier),
		Jamat:         NewReportService(domain.KindJamat, repos.Jamat, repos.User, notifier),
		DineFera:      NewReportService(domain.KindDineFera, repos.DineFera, repos.User, notifier),
		Sofor:         NewReportService(domain.KindSofor, repos.Sofor, repos.User, notifier),
		Talim:         NewReportService(domain.KindTalim, repos.Talim, repos.User, notifier),
		Dayi:          NewReportService(domain.KindDayi, repos.Dayi, repos.User, notifier),
	}
}
