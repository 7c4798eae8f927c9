package fill

// Vietnamese name pools. Authentic names with proper diacritics keep the
// generated documents representative of the real paperwork the templates
// describe.
var (
	surnames = []string{
		"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Phan", "Vũ", "Võ", "Đặng", "Bùi",
		"Đỗ", "Hồ", "Ngô", "Dương", "Lý", "Đinh", "Trương", "Mai", "Lưu", "Hà",
	}

	middleNames = []string{
		"Văn", "Thị", "Hữu", "Đức", "Minh", "Anh", "Công", "Quang", "Thanh", "Hoài",
	}

	givenNamesMale = []string{
		"Hùng", "Dũng", "Tùng", "Kiên", "Phong", "Hải", "Nam", "Long", "Tuấn", "Cường",
		"Khoa", "Thắng", "Huy", "Bình", "Thiện", "Đạt", "Hiếu", "Quân", "Tâm", "Nhân",
	}

	givenNamesFemale = []string{
		"Linh", "Hoa", "Mai", "Lan", "Thu", "Hương", "Ngọc", "Hạnh", "Thảo", "Trang",
		"Huyền", "Phương", "Yến", "Chi", "My", "Vy", "Diệp", "Xuân", "Nga", "Dung",
	}
)

// Address pools.
var (
	streets = []string{
		"Nguyễn Trãi", "Lê Lợi", "Trần Hưng Đạo", "Hai Bà Trưng", "Cách Mạng Tháng 8",
	}
	districts = []string{
		"Quận 1", "Quận 3", "Quận 5", "Quận Bình Thạnh", "Quận Tân Bình",
	}
	cities = []string{
		"TP. Hồ Chí Minh", "Hà Nội", "Đà Nẵng", "Cần Thơ",
	}
)

// mobilePrefixes are the common Vietnamese mobile carrier prefixes.
var mobilePrefixes = []string{"09", "08", "07", "05", "03"}

// emailLocalParts are ASCII-safe local parts for generated addresses.
var emailLocalParts = []string{
	"hung", "linh", "tuan", "thao", "minh", "ngoc", "quan", "trang", "huy", "lan",
}
