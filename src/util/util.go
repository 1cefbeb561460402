package util

import (
	"errors"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidURL = errors.New("url must be absolute with scheme and host")

func ReadConfig(filePath string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(out); err != nil {
		return err
	}

	return nil
}

func parseAbsURL(u string) (*url.URL, error) {
	oURL, err := url.Parse(u)
	if err != nil {
		return nil, err
	}
	if oURL.Scheme == "" || oURL.Host == "" {
		return nil, ErrInvalidURL
	}
	return oURL, nil
}

// scheme://host，host中保留端口
func GetOrigin(u string) (string, error) {
	oURL, err := parseAbsURL(u)
	if err != nil {
		return "", err
	}
	return oURL.Scheme + "://" + oURL.Host, nil
}

func RobotsURL(u string) (string, error) {
	origin, err := GetOrigin(u)
	if err != nil {
		return "", err
	}
	return origin + "/robots.txt", nil
}

// 用于robots规则匹配的path，包含query
func RequestPath(u string) (string, error) {
	oURL, err := parseAbsURL(u)
	if err != nil {
		return "", err
	}
	return oURL.RequestURI(), nil
}

// host中可能残留有:port信息，需要进一步移除
func GetDomain(u string) (string, error) {
	oURL, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return strings.Split(oURL.Host, ":")[0], nil
}
