package i18n

// The assistant speaks Korean, English, Chinese and Vietnamese. Every
// lookup falls back to Korean for unknown locale codes.

// DefaultLanguage is used for every unknown locale code.
const DefaultLanguage = "ko"

// Texts is the set of locale-dependent UI strings.
type Texts struct {
	Greeting         string `json:"greeting"`
	InputPlaceholder string `json:"input_placeholder"`
	DefaultAnswer    string `json:"default_answer"`
	ErrorPrefix      string `json:"error_prefix"`
	SourcesTitle     string `json:"sources_title"`
	TableTitle       string `json:"table_title"`
	SidebarTitle     string `json:"sidebar_title"`
	SidebarHome      string `json:"sidebar_home"`
	SidebarNewChat   string `json:"sidebar_new_chat"`
}

var texts = map[string]Texts{
	"ko": {
		Greeting:         "안녕하세요! 부동산 AI 어시스턴트입니다. 어떤 매물을 찾고 계신가요?",
		InputPlaceholder: "부동산에 대해 무엇이든 물어보세요...",
		DefaultAnswer:    "DB 조회가 완료되었습니다. 자세한 내용은 아래 표와 차트를 확인해 주세요.",
		ErrorPrefix:      "DB 질의 중 오류가 발생했어요: ",
		SourcesTitle:     "출처",
		TableTitle:       "조회 결과",
		SidebarTitle:     "부동산 챗봇",
		SidebarHome:      "홈으로",
		SidebarNewChat:   "새 채팅",
	},
	"en": {
		Greeting:         "Hello! I'm your real-estate AI assistant. What kind of property are you looking for?",
		InputPlaceholder: "Ask me anything about real estate...",
		DefaultAnswer:    "The database query is complete. Please check the table and chart below for details.",
		ErrorPrefix:      "An error occurred while querying the DB: ",
		SourcesTitle:     "Sources",
		TableTitle:       "Search Results",
		SidebarTitle:     "Real Estate Chatbot",
		SidebarHome:      "Go Home",
		SidebarNewChat:   "New Chat",
	},
	"zh": {
		Greeting:         "你好！我是房产 AI 助手。你想找什么样的房源？",
		InputPlaceholder: "关于韩国房产，想问什么都可以…",
		DefaultAnswer:    "数据库查询已完成，请查看下方的表格和图表。",
		ErrorPrefix:      "数据库查询时发生错误：",
		SourcesTitle:     "参考资料",
		TableTitle:       "查询结果",
		SidebarTitle:     "房产聊天助手",
		SidebarHome:      "回到首页",
		SidebarNewChat:   "新对话",
	},
	"vi": {
		Greeting:         "Xin chào! Tôi là trợ lý bất động sản AI. Bạn đang tìm loại nhà nào?",
		InputPlaceholder: "Hãy hỏi bất cứ điều gì về bất động sản Hàn Quốc...",
		DefaultAnswer:    "Truy vấn DB đã hoàn thành. Hãy xem bảng và biểu đồ bên dưới nhé.",
		ErrorPrefix:      "Đã xảy ra lỗi khi truy vấn DB: ",
		SourcesTitle:     "Nguồn tham khảo",
		TableTitle:       "Kết quả truy vấn",
		SidebarTitle:     "Trợ lý bất động sản",
		SidebarHome:      "Về trang chính",
		SidebarNewChat:   "Cuộc trò chuyện mới",
	},
}

var columnLabels = map[string]map[string]string{
	"ko": {
		"grfe":      "보증금",
		"rtfe":      "월세",
		"rent_area": "면적",
		"cgg_nm":    "구",
		"stdg_nm":   "동",
	},
	"en": {
		"grfe":      "Deposit",
		"rtfe":      "Monthly Rent",
		"rent_area": "Area",
		"cgg_nm":    "District",
		"stdg_nm":   "Neighborhood",
	},
	"zh": {
		"grfe":      "押金",
		"rtfe":      "月租",
		"rent_area": "面积",
		"cgg_nm":    "区",
		"stdg_nm":   "洞/街道",
	},
	"vi": {
		"grfe":      "Tiền cọc",
		"rtfe":      "Tiền thuê",
		"rent_area": "Diện tích",
		"cgg_nm":    "Quận",
		"stdg_nm":   "Phường",
	},
}

// Normalize maps an arbitrary locale code onto a supported one.
func Normalize(lang string) string {
	if _, ok := texts[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// TextsFor returns the UI strings for lang.
func TextsFor(lang string) Texts {
	return texts[Normalize(lang)]
}

// ColumnLabel resolves a raw result column key to its display label for
// lang, returning the key itself when no translation exists.
func ColumnLabel(lang, key string) string {
	if label, ok := columnLabels[Normalize(lang)][key]; ok {
		return label
	}
	return key
}
