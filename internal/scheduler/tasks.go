package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskScoreEmail = "requests.score.email"

const TaskScoreSMS = "requests.score.sms"

type ScoreNotificationPayload struct {
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
}

func NewScoreEmailTask(payload ScoreNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskScoreEmail, data), nil
}

func NewScoreSMSTask(payload ScoreNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskScoreSMS, data), nil
}

func ParseScoreNotificationPayload(task *asynq.Task) (ScoreNotificationPayload, error) {
	var payload ScoreNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ScoreNotificationPayload{}, err
	}
	return payload, nil
}
