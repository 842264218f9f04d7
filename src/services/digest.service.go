package services

import (
	"context"
	"fmt"
	"log"

	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/lib/mailer"
	"github.com/william000000/team-odd-bn-backend/src/repository"
)

type DigestService struct {
	profiles repository.ProfileRepository
	mailer   lib.Mailer
}

func NewDigestService(profiles repository.ProfileRepository, mailer lib.Mailer) *DigestService {
	return &DigestService{profiles: profiles, mailer: mailer}
}

func DigestMessage(pending int64) string {
	if pending == 1 {
		return "You have 1 pending trip request awaiting approval"
	}
	return fmt.Sprintf("You have %d pending trip requests awaiting approval", pending)
}

// SendPendingApprovalsDigest emails every manager who has pending requests
// from direct reports. It returns how many emails were sent.
func (s *DigestService) SendPendingApprovalsDigest(ctx context.Context) (int, error) {
	rows, err := s.profiles.PendingCountsByManager(ctx)
	if err != nil {
		log.Printf("[DigestService] pending counts: %s\n", err.Error())
		return 0, err
	}
	sent := 0
	for _, row := range rows {
		if row.Pending == 0 || row.Email == "" {
			continue
		}
		msg := mailer.NewMessage([]string{row.Email}, "Trip requests awaiting approval", DigestMessage(row.Pending))
		if err := s.mailer.Send(ctx, msg); err != nil {
			log.Printf("[DigestService] mail to %s: %s\n", row.Email, err.Error())
			continue
		}
		sent++
	}
	log.Printf("[DigestService] sent %d digests\n", sent)
	return sent, nil
}
