package lib

import (
	"fmt"
	"os"

	"github.com/pusher/pusher-http-go/v5"
)

var pusherClient *pusher.Client

// Pusher is the subset of the pusher client used to push realtime notifications.
type Pusher interface {
	Trigger(channel string, eventName string, data interface{}) error
}

func GetPusherClient() *pusher.Client {
	if pusherClient != nil {
		return pusherClient
	}
	if os.Getenv("PUSHER_APP_ID") == "" {
		return nil
	}
	pusherClient = &pusher.Client{
		AppID:   os.Getenv("PUSHER_APP_ID"),
		Key:     os.Getenv("PUSHER_KEY"),
		Secret:  os.Getenv("PUSHER_SECRET"),
		Cluster: os.Getenv("PUSHER_CLUSTER"),
		Secure:  true,
	}
	return pusherClient
}

func UserChannel(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}
