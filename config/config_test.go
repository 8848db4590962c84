package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustedProxies(t *testing.T) {
	saved := AppConfig
	defer func() { AppConfig = saved }()

	AppConfig.TrustedProxies = ""
	assert.Nil(t, TrustedProxies())

	AppConfig.TrustedProxies = " 10.0.0.1 , 172.16.0.0/12,,"
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, TrustedProxies())
}

func TestAllowedOrigins(t *testing.T) {
	saved := AppConfig
	defer func() { AppConfig = saved }()

	AppConfig.CORSOrigins = ""
	assert.Equal(t, []string{"*"}, AllowedOrigins())

	AppConfig.CORSOrigins = "https://readycleans.space, http://localhost:5173"
	assert.Equal(t, []string{"https://readycleans.space", "http://localhost:5173"}, AllowedOrigins())
}
