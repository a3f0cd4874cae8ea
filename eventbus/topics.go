package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 관리합니다.
// 필요시 환경설정으로 교체할 수 있도록 한 곳에서 관리합니다.

var (
	// TopicRecommendationEvents 는 추천 배치 잡의 트리거/완료 이벤트 토픽이다.
	TopicRecommendationEvents = NewTopic("learnscape.recommendation.events")

	// TopicModerationEvents 는 학습자 신고(flag) 이벤트 토픽이다.
	// 모더레이션 서비스가 외부에서 구독한다.
	TopicModerationEvents = NewTopic("learnscape.moderation.events")
)

var AllTopics = []Topic{
	TopicRecommendationEvents,
	TopicModerationEvents,
}
