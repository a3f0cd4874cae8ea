package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging        LoggingConfig        `yaml:"logging"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	API            APIConfig            `yaml:"api"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RecommendationConfig 는 탐험 추천 배치 잡의 상수들을 정의한다.
// 파이프라인은 이 값을 생성자 주입으로만 받으며, 전역 상태를 직접 읽지 않는다.
type RecommendationConfig struct {
	// SimilarityThreshold 미만의 점수를 받은 후보는 추천 목록에서 제외된다.
	// 유사한 탐험이 적은 경우에도 질 낮은 추천이 노출되지 않도록 하는 하한선이다.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// MaxRecommendations 는 탐험 하나당 저장되는 추천 ID의 최대 개수이다.
	MaxRecommendations int `yaml:"max_recommendations"`

	// WorkerCount 는 비교 단계의 병렬 워커 수이다. 0 이하면 CPU 수를 사용한다.
	WorkerCount int `yaml:"worker_count"`

	// SameTopicSimilarity / DefaultTopicSimilarity 는 카테고리 쌍 유사도의
	// 기본값이다. TopicSimilarities 에 없는 쌍은 DefaultTopicSimilarity 를 쓴다.
	SameTopicSimilarity    float64 `yaml:"same_topic_similarity"`
	DefaultTopicSimilarity float64 `yaml:"default_topic_similarity"`

	// TopicSimilarities 는 서로 다른 카테고리 쌍에 대한 유사도 보정 테이블이다.
	TopicSimilarities []TopicSimilarity `yaml:"topic_similarities"`

	// RecencyBonusDays 이내에 갱신된 후보 탐험은 가산점을 받는다.
	RecencyBonusDays int `yaml:"recency_bonus_days"`
}

// TopicSimilarity 는 카테고리 쌍 하나의 유사도 항목이다. 쌍의 순서는 무관하다.
type TopicSimilarity struct {
	Topics []string `yaml:"topics"`
	Score  float64  `yaml:"score"`
}

// APIConfig 는 learner-facing API 의 동작 상수들을 정의한다.
type APIConfig struct {
	// MaxPlaythroughRecommendations 는 탐험 종료 화면에 노출할
	// 시스템 추천의 최대 개수이다. 저장된 추천 목록에서 무작위 표본을 뽑는다.
	MaxPlaythroughRecommendations int `yaml:"max_playthrough_recommendations"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	c.applyDefaults()
	config = &c

	InitLogger(c.Logging.Level)
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// applyDefaults 는 설정 파일에서 생략된 값들을 기본값으로 채운다.
func (c *AppConfig) applyDefaults() {
	if c.Recommendation.SimilarityThreshold == 0 {
		c.Recommendation.SimilarityThreshold = 3.0
	}
	if c.Recommendation.MaxRecommendations <= 0 {
		c.Recommendation.MaxRecommendations = 10
	}
	if c.Recommendation.SameTopicSimilarity == 0 {
		c.Recommendation.SameTopicSimilarity = 5.0
	}
	if c.Recommendation.DefaultTopicSimilarity == 0 {
		c.Recommendation.DefaultTopicSimilarity = 1.0
	}
	if c.Recommendation.RecencyBonusDays <= 0 {
		c.Recommendation.RecencyBonusDays = 7
	}
	if c.API.MaxPlaythroughRecommendations <= 0 {
		c.API.MaxPlaythroughRecommendations = 4
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
