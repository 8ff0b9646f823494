package model

// WeekParity тип учебной недели (нечётная/чётная)
type WeekParity string

const (
	ParityUnset WeekParity = ""
	ParityOdd   WeekParity = "odd"
	ParityEven  WeekParity = "even"
)

// WeekValue возвращает значение поля "week" в данных провайдера: "1" или "2"
func (p WeekParity) WeekValue() string {
	if p == ParityEven {
		return "2"
	}
	return "1"
}

// ParityFromWeekNumber преобразует номер недели провайдера (1/2) в WeekParity
func ParityFromWeekNumber(n int) WeekParity {
	if n == 2 {
		return ParityEven
	}
	return ParityOdd
}

// ParseParity разбирает токен odd/even из команд
func ParseParity(token string) (WeekParity, bool) {
	switch token {
	case "odd":
		return ParityOdd, true
	case "even":
		return ParityEven, true
	}
	return ParityUnset, false
}

// Lesson одна пара в том виде, в котором её отдаёт API расписания
type Lesson struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Name          string `json:"name"`
	SubjectType   string `json:"subjectType"`
	Teacher       string `json:"teacher"`
	SecondTeacher string `json:"second_teacher"`
	Room          string `json:"room"`
	Form          string `json:"form"`
	URL           string `json:"url"`
	Week          string `json:"week"` // "1" - нечётная, "2" - чётная
}

// DaySchedule пары одного дня недели
type DaySchedule struct {
	Lessons []Lesson `json:"lessons"`
}

// GroupSchedule недельное расписание группы.
// Days индексируется строковым номером дня: "0" - понедельник ... "6" - воскресенье.
type GroupSchedule struct {
	Days map[string]DaySchedule `json:"days"`
}
