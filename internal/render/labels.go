package render

var thaiLabels = map[string]string{
	"Client Task Tracker":                "ระบบจดบันทึกงานลูกค้า",
	"Keep track of work owed to clients": "จัดการงานที่ต้องส่งมอบให้ลูกค้าอย่างเป็นระบบ",
	"Pending":                            "รอดำเนินการ",
	"Completed":                          "เสร็จแล้ว",
	"Total":                              "ทั้งหมด",
	"New task":                           "เพิ่มงานใหม่",
	"Edit task":                          "แก้ไขงาน",
	"Title *":                            "ชื่องาน *",
	"What needs to be done":              "ระบุชื่องานที่ต้องทำ",
	"Client":                             "ลูกค้า",
	"Client or company name":             "ชื่อลูกค้าหรือบริษัท",
	"Due date":                           "วันที่ต้องส่งมอบ",
	"Priority":                           "ระดับความสำคัญ",
	"Description":                        "รายละเอียด",
	"Scope, special requirements":        "รายละเอียดของงาน เช่น ขอบเขตงาน ข้อกำหนดพิเศษ",
	"Add task":                           "เพิ่มงาน",
	"Save changes":                       "บันทึกการแก้ไข",
	"Cancel":                             "ยกเลิก",
	"Pending tasks (%d)":                 "งานที่รอดำเนินการ (%d)",
	"Completed tasks (%d)":               "งานที่เสร็จแล้ว (%d)",
	"Overdue":                            "เกินกำหนด",
	"Client: %s":                         "ลูกค้า: %s",
	"Due: %s":                            "ส่งมอบ: %s",
	"Created: %s":                        "สร้างเมื่อ: %s",
	"Edit":                               "แก้ไข",
	"Delete":                             "ลบ",
	"Mark as done":                       "ทำเครื่องหมายว่าเสร็จ",
	"Mark as pending":                    "ยกเลิกสถานะเสร็จ",
	"No tasks yet":                       "ยังไม่มีงานในระบบ",
	"Press \"New task\" to get started":  "กด \"เพิ่มงานใหม่\" เพื่อเริ่มต้น",
	"High priority":                      "สำคัญมาก",
	"Medium priority":                    "สำคัญปานกลาง",
	"Low priority":                       "สำคัญน้อย",
	"Invalid date, use YYYY-MM-DD":       "วันที่ไม่ถูกต้อง ใช้รูปแบบ YYYY-MM-DD",
	"Title is required":                  "ต้องระบุชื่องาน",
	"Task added":                         "เพิ่มงานแล้ว",
	"Changes saved":                      "บันทึกการแก้ไขแล้ว",
	"Task deleted":                       "ลบงานแล้ว",
	"Cancelled":                          "ยกเลิกแล้ว",
	"n new • e edit • space done • d delete • q quit":          "n เพิ่ม • e แก้ไข • space เสร็จ • d ลบ • q ออก",
	"tab next field • ←/→ priority • ctrl+s save • esc cancel": "tab ช่องถัดไป • ←/→ ความสำคัญ • ctrl+s บันทึก • esc ยกเลิก",
}
