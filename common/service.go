package common

import (
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	serviceInstance     string
	serviceInstanceOnce sync.Once
)

func GetServiceName() string {
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = "changeflow"
	}
	return name
}

func GetServiceInstance() string {
	serviceInstanceOnce.Do(func() {
		serviceInstance = GetServiceName() + "-" + uuid.New().String()
	})
	return serviceInstance
}
