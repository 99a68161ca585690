package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/exceptions"
)

type CommonProvider struct {
	client *redis.Client
}

func NewCommonProvider(conString string) (*CommonProvider, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conString,
		Password: "",
		DB:       0,
	})

	err := client.Ping(context.Background()).Err()

	if err != nil {
		return nil, err
	}

	return &CommonProvider{client: client}, nil
}

func (c *CommonProvider) saveIntoHash(hashKey string, hashValue string, value interface{}) error {
	err := c.client.HSet(context.Background(), hashKey, hashValue, value).Err()

	if err != nil {
		logrus.Errorln("Failed save into hash: ", err.Error())
		return exceptions.InternalError
	}

	return nil
}

func (c *CommonProvider) getAllFromHash(hashKey string) (map[string]string, error) {
	values, err := c.client.HGetAll(context.Background(), hashKey).Result()

	if err != nil {
		logrus.Errorln("Failed get all from hash: ", err.Error())
		return nil, exceptions.InternalError
	}

	return values, nil
}
