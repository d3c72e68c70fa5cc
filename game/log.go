package game

import "github.com/sirupsen/logrus"

var defaultLogger = logrus.New()
