package notify

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	channelPrefix = "riddle:"
	topicPrefix   = channelPrefix + "topic:"
	userPrefix    = channelPrefix + "user:"

	// ChannelPattern matches every channel the dispatcher publishes on.
	ChannelPattern = channelPrefix + "*"

	TopicLobby = "lobby"
)

func RoomTopic(roomID int64) string { return fmt.Sprintf("room:%d", roomID) }

func ChatTopic(roomID int64) string { return fmt.Sprintf("room:%d:chat", roomID) }

func HistoryTopic(roomID int64) string { return fmt.Sprintf("room:%d:history", roomID) }

// RoomTopics lists every topic a room member listens on.
func RoomTopics(roomID int64) []string {
	return []string{RoomTopic(roomID), ChatTopic(roomID), HistoryTopic(roomID)}
}

func TopicChannel(topic string) string { return topicPrefix + topic }

func UserChannel(userID int64) string { return userPrefix + strconv.FormatInt(userID, 10) }

// Destination is a parsed channel name: either a topic or a single user.
type Destination struct {
	Topic  string
	UserID int64
}

func (d Destination) IsUser() bool { return d.Topic == "" }

// ParseChannel reverses TopicChannel and UserChannel.
func ParseChannel(channel string) (Destination, bool) {
	if topic, ok := strings.CutPrefix(channel, topicPrefix); ok && topic != "" {
		return Destination{Topic: topic}, true
	}
	if raw, ok := strings.CutPrefix(channel, userPrefix); ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Destination{}, false
		}
		return Destination{UserID: id}, true
	}
	return Destination{}, false
}
