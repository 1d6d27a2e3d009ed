package prompt

// Vietnamese display text for well-known option values, keyed by category.
// Values without an entry keep their English text.
var promptTranslationsVi = map[string]map[string]string{
	"scene": {
		"studio":            "Studio chuyên nghiệp",
		"white-background":  "Nền trắng",
		"urban-street":      "Đường phố thành phố",
		"minimalist-indoor": "Phòng tối giản",
		"cafe":              "Quán cà phê",
		"outdoor-park":      "Công viên ngoài trời",
		"office":            "Văn phòng hiện đại",
		"luxury-interior":   "Nội thất sang trọng",
		"rooftop":           "Sân thượng",
		"beach":             "Bãi biển",
		"nature":            "Thiên nhiên",
		"garden":            "Vườn",
		"home":              "Nhà ở",
	},
	"lighting": {
		"soft-diffused":   "Ánh sáng mềm, khuếch tán",
		"golden-hour":     "Ánh sáng vàng chiều",
		"studio-bright":   "Ánh sáng studio sáng",
		"dramatic-shadow": "Ánh sáng kịch tính với bóng",
		"backlighting":    "Ánh sáng từ sau",
		"rim-light":       "Ánh sáng viền",
		"natural-window":  "Ánh sáng từ cửa sổ tự nhiên",
		"sunset":          "Ánh sáng hoàng hôn",
		"moody-dark":      "Ánh sáng u ám",
		"overcast":        "Ánh sáng u mưu",
	},
	"mood": {
		"confident":  "Tự tin",
		"elegant":    "Thanh lịch",
		"playful":    "Vui tươi",
		"serious":    "Nghiêm túc",
		"romantic":   "Lãng mạn",
		"energetic":  "Năng động",
		"calm":       "Bình tĩnh",
		"mysterious": "Bí ẩn",
		"sultry":     "Gợi cảm",
		"joyful":     "Vui vẻ",
	},
	"style": {
		"minimalist": "Tối giản",
		"casual":     "Thường ngày",
		"formal":     "Trang trọng",
		"elegant":    "Thanh lịch",
		"sporty":     "Thể thao",
		"vintage":    "Hoài cổ",
		"edgy":       "Táo bạo",
		"bohemian":   "Tự do phong cách",
		"luxury":     "Sang trọng",
	},
	"colorPalette": {
		"vibrant":     "Sôi động",
		"monochrome":  "Đơn sắc",
		"pastel":      "Pastel nhẹ nhàng",
		"jewel-tones": "Tông màu đá quý",
		"earth-tones": "Tông màu đất",
		"white-black": "Trắng-Đen tương phản",
		"warm":        "Ấm áp",
		"cool":        "Mát lạnh",
		"neutral":     "Trung tính",
	},
	"cameraAngle": {
		"eye-level":     "Góc mắt",
		"low-angle":     "Góc thấp",
		"high-angle":    "Góc cao",
		"side-profile":  "Hồ sơ bên",
		"over-shoulder": "Phía trên vai",
		"close-up":      "Chụp cận cảnh",
		"full-body":     "Toàn thân",
	},
	"hairstyle": {
		"straight":      "Thẳng",
		"wavy":          "Xoăn nhẹ",
		"curly":         "Xoăn",
		"high-ponytail": "Đuôi ngựa cao",
		"low-ponytail":  "Đuôi ngựa thấp",
		"half-up":       "Nửa tóc",
		"bun":           "Tóc búi",
		"braided":       "Tóc bện",
		"tousled":       "Tóc tù xù",
	},
	"makeup": {
		"natural":    "Tự nhiên",
		"bold-eye":   "Mắt kẻ đậm",
		"red-lips":   "Môi đỏ",
		"smoky-eyes": "Mắt khói",
		"clean-girl": "Cô gái sạch",
		"douyin":     "Style Douyin",
		"glam":       "Lộng lẫy",
	},
}

// TranslateOptionLabel returns the Vietnamese display text for a known
// option value, or the value unchanged when the language is English or no
// translation exists.
func TranslateOptionLabel(category, value, language string) string {
	if language == "vi" {
		if table, ok := promptTranslationsVi[category]; ok {
			if vi, ok := table[value]; ok {
				return vi
			}
		}
	}
	return value
}
