package config

import (
	"os"

	gslog "github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// _Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
// 필요 시 다른 구현으로 교체할 수 있도록 인터페이스로 노출한다.
type _Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Logger 는 전역 로거 인스턴스다.
// InitApp 이 호출되지 않더라도 기본 info 레벨로 동작하도록 초기화한다.
var Logger _Logger = NewLogger("info")

// InitLogger 는 주어진 레벨로 전역 로거를 교체한다. 빈 값이면 info 를 쓴다.
func InitLogger(level string) {
	if level == "" {
		level = "info"
	}
	Logger = NewLogger(level)
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 로거를 생성한다.
func NewLogger(level string) _Logger {
	logLevel := gslog.LevelByName(level)

	var levels gslog.Levels
	for _, lv := range gslog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	// 기본 필드를 datetime/level/message 로만 제한하고 나머지 정보는
	// Fields(top-level 키)로만 출력한다.
	formatter := gslog.NewJSONFormatter(func(f *gslog.JSONFormatter) {
		f.Fields = []string{
			gslog.FieldKeyDatetime,
			gslog.FieldKeyLevel,
			gslog.FieldKeyMessage,
		}
		f.Aliases = gslog.StringMap{
			gslog.FieldKeyDatetime: "datetime",
			gslog.FieldKeyLevel:    "level",
			gslog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	logger := gslog.NewWithHandlers(h)
	return logger
}

// withServiceName 은 service_name 필드를 SERVICE_NAME 환경변수 기준으로 보강한다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			fields["service_name"] = sn
		}
	}
	return fields
}

// InfoWithFields 는 request_id, span_id, service_name 등 구조화 필드를 포함한
// JSON 로그를 출력하기 위한 헬퍼 함수다.
func InfoWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*gslog.Logger); ok {
		lg.WithFields(gslog.M(fields)).Info(msg)
		return
	}
	Logger.Info(msg)
}

func DebugWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*gslog.Logger); ok {
		lg.WithFields(gslog.M(fields)).Debug(msg)
		return
	}
	Logger.Debug(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*gslog.Logger); ok {
		lg.WithFields(gslog.M(fields)).Error(msg)
		return
	}
	Logger.Error(msg)
}
