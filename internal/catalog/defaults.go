package catalog

import "portfolio.dev/internal/models"

const scraperCode = `import requests
from bs4 import BeautifulSoup
import sqlite3
import time

def parse_website(url):
    """Main scraping routine"""
    try:
        response = requests.get(url, timeout=10)
        response.raise_for_status()

        soup = BeautifulSoup(response.text, 'html.parser')

        # Find the elements we care about
        articles = soup.find_all('article', class_='content-item')

        data = []
        for article in articles[:10]:  # Limit to 10 items
            title = article.find('h2').text.strip() if article.find('h2') else 'Untitled'
            link = article.find('a')['href'] if article.find('a') else '#'

            # Persist to the database
            save_to_db(title, link)
            data.append({'title': title, 'link': link})

        return data
    except Exception as e:
        print(f"Scraping failed: {e}")
        return []

def save_to_db(title, link):
    """Store a row in SQLite"""
    conn = sqlite3.connect('parsed_data.db')
    cursor = conn.cursor()

    cursor.execute('''
        CREATE TABLE IF NOT EXISTS articles (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            link TEXT NOT NULL,
            parsed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    ''')

    cursor.execute('INSERT INTO articles (title, link) VALUES (?, ?)', (title, link))
    conn.commit()
    conn.close()

if __name__ == "__main__":
    target_url = "https://example.com/news"
    parsed_data = parse_website(target_url)
    print(f"Scraped {len(parsed_data)} articles")`

const flaskCode = `from flask import Flask, render_template, request, redirect, url_for
from flask_sqlalchemy import SQLAlchemy
from datetime import datetime

app = Flask(__name__)
app.config['SQLALCHEMY_DATABASE_URI'] = 'sqlite:///tasks.db'
app.config['SQLALCHEMY_TRACK_MODIFICATIONS'] = False
db = SQLAlchemy(app)

class Task(db.Model):
    id = db.Column(db.Integer, primary_key=True)
    title = db.Column(db.String(200), nullable=False)
    description = db.Column(db.Text)
    status = db.Column(db.String(20), default='pending')
    created_at = db.Column(db.DateTime, default=datetime.utcnow)

    def __repr__(self):
        return f'<Task {self.title}>'

@app.route('/')
def index():
    """Task list"""
    tasks = Task.query.order_by(Task.created_at.desc()).all()
    return render_template('index.html', tasks=tasks)

@app.route('/task/add', methods=['POST'])
def add_task():
    """Create a task"""
    title = request.form.get('title')
    description = request.form.get('description')

    if title:
        new_task = Task(title=title, description=description)
        db.session.add(new_task)
        db.session.commit()

    return redirect(url_for('index'))

@app.route('/task/<int:id>/complete')
def complete_task(id):
    """Mark a task as done"""
    task = Task.query.get_or_404(id)
    task.status = 'completed'
    db.session.commit()
    return redirect(url_for('index'))

if __name__ == '__main__':
    with app.app_context():
        db.create_all()
    app.run(debug=True)`

const coursesSQL = `-- Database schema for the course enrollment app
CREATE TABLE users (
    id INT PRIMARY KEY AUTOINCREMENT,
    email VARCHAR(255) UNIQUE NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    phone VARCHAR(20),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE courses (
    id INT PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(255) NOT NULL,
    description TEXT,
    price DECIMAL(10, 2),
    duration_hours INT,
    instructor_id INT,
    max_students INT,
    start_date DATE,
    FOREIGN KEY (instructor_id) REFERENCES instructors(id)
);

CREATE TABLE enrollments (
    id INT PRIMARY KEY AUTOINCREMENT,
    user_id INT NOT NULL,
    course_id INT NOT NULL,
    enrollment_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status VARCHAR(20) DEFAULT 'active',
    payment_status VARCHAR(20) DEFAULT 'pending',
    FOREIGN KEY (user_id) REFERENCES users(id),
    FOREIGN KEY (course_id) REFERENCES courses(id),
    UNIQUE(user_id, course_id)
);

-- Per-course enrollment statistics
SELECT
    c.title,
    COUNT(e.id) as enrolled_students,
    AVG(CASE WHEN e.payment_status = 'paid' THEN 1 ELSE 0 END) * 100 as payment_rate
FROM courses c
LEFT JOIN enrollments e ON c.id = e.course_id
GROUP BY c.id
ORDER BY enrolled_students DESC;`

const pygameCode = `import pygame
import sys
import random

pygame.init()

WIDTH, HEIGHT = 800, 600
screen = pygame.display.set_mode((WIDTH, HEIGHT))
pygame.display.set_caption("My PyGame game")

BACKGROUND = (20, 30, 50)
PLAYER_COLOR = (0, 200, 100)
ENEMY_COLOR = (220, 60, 60)

class Player:
    def __init__(self):
        self.x = WIDTH // 2
        self.y = HEIGHT - 50
        self.width = 50
        self.height = 30
        self.speed = 5
        self.score = 0

    def draw(self):
        pygame.draw.rect(screen, PLAYER_COLOR,
                        (self.x, self.y, self.width, self.height))

    def move(self, direction):
        if direction == "left" and self.x > 0:
            self.x -= self.speed
        if direction == "right" and self.x < WIDTH - self.width:
            self.x += self.speed

class Game:
    def __init__(self):
        self.player = Player()
        self.enemies = []
        self.clock = pygame.time.Clock()
        self.running = True
        self.font = pygame.font.Font(None, 36)

    def run(self):
        while self.running:
            self.handle_events()
            self.update()
            self.draw()
            self.clock.tick(60)

        pygame.quit()
        sys.exit()

    def handle_events(self):
        for event in pygame.event.get():
            if event.type == pygame.QUIT:
                self.running = False

        keys = pygame.key.get_pressed()
        if keys[pygame.K_LEFT]:
            self.player.move("left")
        if keys[pygame.K_RIGHT]:
            self.player.move("right")

    def update(self):
        pass

    def draw(self):
        screen.fill(BACKGROUND)
        self.player.draw()

        score_text = self.font.render(f"Score: {self.player.score}", True, (255, 255, 255))
        screen.blit(score_text, (10, 10))

        pygame.display.flip()

if __name__ == "__main__":
    game = Game()
    game.run()`

var defaultProjects = []models.Project{
	{
		ID:           1,
		Title:        "BeautifulSoup data scraper",
		Category:     models.CategoryPython,
		Description:  "Scrapes websites to collect structured information. Uses BeautifulSoup to walk the HTML and SQLite to store the results.",
		Analogy:      "Like a digital archivist that gathers and files information from the web on its own.",
		Code:         scraperCode,
		Language:     "python",
		Technologies: []string{"Python", "BeautifulSoup", "SQLite", "Requests"},
		Links: models.Links{
			GitHub: "https://github.com/mastefelix/web_scrapper",
		},
	},
	{
		ID:           2,
		Title:        "Flask web application",
		Category:     models.CategoryWeb,
		Description:  "A full task tracking web app deployed on PythonAnywhere. Built with Flask, SQLAlchemy and Bootstrap.",
		Analogy:      "Like a digital assistant that is always at hand and keeps the workday organised.",
		Code:         flaskCode,
		Language:     "python",
		Technologies: []string{"Python", "Flask", "SQLAlchemy", "HTML/CSS", "Bootstrap"},
		Links: models.Links{
			GitHub: "https://github.com/mastefelix/smart_solution",
			Demo:   "https://mastefelix.pythonanywhere.com",
		},
	},
	{
		ID:           3,
		Title:        "Requirements for a course enrollment app",
		Category:     models.CategoryAnalytics,
		Description:  "A complete analysis case: from gathering requirements to designing the database and drawing process diagrams in Draw.io.",
		Analogy:      "Like an architect drawing a detailed plan before the house is built.",
		Code:         coursesSQL,
		Language:     "sql",
		Technologies: []string{"Draw.io", "SQL", "Requirements analysis", "BPMN"},
		Links: models.Links{
			Demo: "#",
		},
	},
	{
		ID:           4,
		Title:        "PyGame game",
		Category:     models.CategoryPython,
		Description:  "An interactive game built on PyGame. Shows work with graphics, animation and event handling.",
		Analogy:      "Like a construction kit that brings ideas to life with code and animation.",
		Code:         pygameCode,
		Language:     "python",
		Technologies: []string{"Python", "PyGame", "OOP"},
		Links: models.Links{
			GitHub: "https://github.com/mastefelix/pygame",
		},
	},
}

var defaultSkills = []models.Skill{
	{Name: "Python", Level: 90, X: 50, Y: 50},
	{Name: "Flask", Level: 75, X: 20, Y: 30},
	{Name: "Pandas", Level: 70, X: 70, Y: 40},
	{Name: "NumPy", Level: 65, X: 80, Y: 60},
	{Name: "SQL", Level: 80, X: 40, Y: 70},
	{Name: "HTML/CSS", Level: 85, X: 60, Y: 20},
	{Name: "JavaScript", Level: 70, X: 30, Y: 80},
	{Name: "Git", Level: 85, X: 70, Y: 80},
	{Name: "BeautifulSoup", Level: 75, X: 20, Y: 60},
	{Name: "PyGame", Level: 60, X: 80, Y: 30},
	{Name: "Figma", Level: 70, X: 40, Y: 40},
	{Name: "Draw.io", Level: 85, X: 60, Y: 60},
	{Name: "1C", Level: 60, X: 30, Y: 50},
}

// Default returns the built-in catalog
func Default() *Store {
	s, err := NewStore(defaultProjects, defaultSkills)
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return s
}
