package middleware

import (
	"github.com/gin-gonic/gin"
)

// Language 从查询参数中解析响应语言（en|bn），无效值回退到英语
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.DefaultQuery("lang", "en")
		if lang != "en" && lang != "bn" {
			lang = "en"
		}

		c.Set("lang", lang)
		c.Next()
	}
}
